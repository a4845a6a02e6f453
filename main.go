package main

import (
	"log"

	"campus-recommender/core/server"
)

// @title Campus Event Recommender API
// @version 1.0
// @description Backend for campus event discovery: admin-managed events with AI enrichment, student profiles and personalized recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
