package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams holds common list-endpoint query parameters
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext parses pagination query parameters with sane bounds
func FromContext(c echo.Context) QueryParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}

	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}

	return QueryParams{PageNumber: page, PageSize: size}
}
