package repository

import (
	"context"
	"errors"

	"campus-recommender/core/database"
	"campus-recommender/core/logger"
	eventEntity "campus-recommender/modules/event/entity"
	"campus-recommender/modules/saved/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateSave is returned when the (user, event) pair is already
// bookmarked
var ErrDuplicateSave = errors.New("event already saved")

const uniqueViolation = "23505"

// SavedRepository handles saved-event database operations
type SavedRepository struct {
	DB database.Database
}

func NewSavedRepository(db database.Database) *SavedRepository {
	return &SavedRepository{DB: db}
}

// SavedRepositoryInterface defines the repository contract
type SavedRepositoryInterface interface {
	SaveEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.SavedEvent, error)
	GetSavedEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListSavedEvents(ctx context.Context, userID uuid.UUID) ([]eventEntity.Event, error)
	DeleteSavedEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

func (r *SavedRepository) SaveEvent(ctx context.Context, userID, eventID uuid.UUID) (*entity.SavedEvent, error) {
	query := `
		INSERT INTO saved_events (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, user_id, event_id, created_at, updated_at
	`

	var saved entity.SavedEvent
	err := r.DB.GetContext(ctx, &saved, query, userID, eventID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateSave
		}
		logger.Error("SavedRepository:SaveEvent", "error", err)
		return nil, err
	}

	return &saved, nil
}

func (r *SavedRepository) GetSavedEventIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT event_id FROM saved_events WHERE user_id = $1 ORDER BY created_at`

	var ids []uuid.UUID
	err := r.DB.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		logger.Error("SavedRepository:GetSavedEventIDs", "error", err)
		return nil, err
	}

	return ids, nil
}

// ListSavedEvents returns the full events a user has saved, ordered by
// start time for calendar export
func (r *SavedRepository) ListSavedEvents(ctx context.Context, userID uuid.UUID) ([]eventEntity.Event, error) {
	query := `
		SELECT e.id, e.title, e.slug, e.description, e.start_datetime, e.end_datetime,
		       e.location, e.poster_url, e.created_by, e.ai_event_type, e.ai_keywords,
		       e.ai_summary, e.embedding_json, e.created_at, e.updated_at
		FROM events e
		JOIN saved_events s ON s.event_id = e.id
		WHERE s.user_id = $1
		ORDER BY e.start_datetime ASC
	`

	var events []eventEntity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("SavedRepository:ListSavedEvents", "error", err)
		return nil, err
	}

	return events, nil
}

// DeleteSavedEvent reports whether a bookmark existed and was removed
func (r *SavedRepository) DeleteSavedEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	query := `DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2`

	result, err := r.DB.SQLx().ExecContext(ctx, query, userID, eventID)
	if err != nil {
		logger.Error("SavedRepository:DeleteSavedEvent", "error", err)
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
