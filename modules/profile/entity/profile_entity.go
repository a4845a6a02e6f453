package entity

import (
	"database/sql/driver"
	"fmt"
	"time"

	"campus-recommender/core/entity"

	"github.com/google/uuid"
)

// StudentProfile holds a student's interests; interests are stored
// comma-separated and split at the repository boundary
type StudentProfile struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Interests string    `db:"interests" json:"interests"`
	entity.BaseEntity
}

// AvailabilitySlot is a recurring weekly free-time window
type AvailabilitySlot struct {
	ProfileID uuid.UUID `db:"profile_id" json:"profile_id"`
	DayOfWeek string    `db:"day_of_week" json:"day_of_week"` // Mon..Sun
	StartTime ClockTime `db:"start_time" json:"start_time"`
	EndTime   ClockTime `db:"end_time" json:"end_time"`
	entity.BaseEntity
}

// ClockTime is a time of day as minutes since midnight, mapped to a
// Postgres TIME column
type ClockTime int

// NewClockTime builds a ClockTime from hour and minute
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClock parses "HH:MM"
func ParseClock(s string) (ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return NewClockTime(hour, minute), nil
}

func (t ClockTime) Hour() int   { return int(t) / 60 }
func (t ClockTime) Minute() int { return int(t) % 60 }

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t ClockTime) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()), nil
}

// Scan implements sql.Scanner; lib/pq yields TIME columns as bytes
// ("HH:MM:SS") or time.Time depending on configuration
func (t *ClockTime) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case time.Time:
		*t = NewClockTime(v.Hour(), v.Minute())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", value)
	}
}

func (t *ClockTime) scanString(s string) error {
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
