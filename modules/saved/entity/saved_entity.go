package entity

import (
	"campus-recommender/core/entity"

	"github.com/google/uuid"
)

// SavedEvent bookmarks an event for a student; one row per
// (user, event) pair
type SavedEvent struct {
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	EventID uuid.UUID `db:"event_id" json:"event_id"`
	entity.BaseEntity
}
