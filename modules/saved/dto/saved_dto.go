package dto

import (
	eventDto "campus-recommender/modules/event/dto"
)

// ===================== Response DTOs =====================

// SavedIDsResponse lists the IDs of the caller's bookmarked events
type SavedIDsResponse struct {
	SavedEventIDs []string `json:"saved_event_ids"`
}

// SavedEventsResponse lists the caller's bookmarked events in full,
// ordered by start time
type SavedEventsResponse struct {
	Events []eventDto.EventResponse `json:"events"`
}
