package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"campus-recommender/core/entity"

	"github.com/google/uuid"
)

// TypeEventReminder marks notifications produced by the reminder
// worker for saved events
const TypeEventReminder = "event_reminder"

// Notification is an in-app message for a user
type Notification struct {
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Message string    `db:"message" json:"message"`
	Type    string    `db:"type" json:"type"`
	Data    JSONB     `db:"data" json:"data"`
	IsRead  bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

// JSONB maps to a Postgres jsonb column
type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
