package dto

import (
	"time"

	"campus-recommender/modules/event/entity"
)

// ===================== Request DTOs =====================

// EventRequest is the body for both create and update; updates replace
// all fields and re-run AI enrichment
type EventRequest struct {
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description" validate:"required"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime" validate:"required"`
	Location      string    `json:"location" validate:"required,max=200"`
}

// ===================== Response DTOs =====================

type EventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Location      string    `json:"location"`
	PosterURL     string    `json:"poster_url,omitempty"`
	AIEventType   string    `json:"ai_event_type,omitempty"`
	AIKeywords    string    `json:"ai_keywords,omitempty"`
	AISummary     string    `json:"ai_summary,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToEventResponse(event *entity.Event) *EventResponse {
	resp := &EventResponse{
		ID:            event.ID.String(),
		Title:         event.Title,
		Slug:          event.Slug,
		Description:   event.Description,
		StartDatetime: event.StartDatetime,
		EndDatetime:   event.EndDatetime,
		Location:      event.Location,
		CreatedAt:     event.CreatedAt,
	}

	if event.PosterURL != nil {
		resp.PosterURL = *event.PosterURL
	}
	if event.AIEventType != nil {
		resp.AIEventType = *event.AIEventType
	}
	if event.AIKeywords != nil {
		resp.AIKeywords = *event.AIKeywords
	}
	if event.AISummary != nil {
		resp.AISummary = *event.AISummary
	}

	return resp
}
