package dto

import (
	eventDto "campus-recommender/modules/event/dto"
)

// RecommendationResponse pairs an event with its similarity score and
// a human-readable justification; computed fresh on every request
type RecommendationResponse struct {
	Event eventDto.EventResponse `json:"event"`
	Score float64                `json:"score"`
	Why   string                 `json:"why"`
}
