package entity

import (
	"time"

	"campus-recommender/core/entity"

	"github.com/google/uuid"
)

// Event is a campus event. The ai_* columns and the embedding are
// populated by the AI provider at create/update time; an event with a
// NULL embedding is never scored for recommendations.
type Event struct {
	Title         string     `db:"title" json:"title"`
	Slug          string     `db:"slug" json:"slug"`
	Description   string     `db:"description" json:"description"`
	StartDatetime time.Time  `db:"start_datetime" json:"start_datetime"`
	EndDatetime   time.Time  `db:"end_datetime" json:"end_datetime"`
	Location      string     `db:"location" json:"location"`
	PosterURL     *string    `db:"poster_url" json:"poster_url,omitempty"`
	CreatedBy     uuid.UUID  `db:"created_by" json:"created_by"`
	AIEventType   *string    `db:"ai_event_type" json:"ai_event_type,omitempty"`
	AIKeywords    *string    `db:"ai_keywords" json:"ai_keywords,omitempty"` // comma-separated
	AISummary     *string    `db:"ai_summary" json:"ai_summary,omitempty"`
	EmbeddingJSON *string    `db:"embedding_json" json:"-"` // JSON array of floats
	entity.BaseEntity
}
