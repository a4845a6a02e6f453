package repository

import (
	"context"
	"database/sql"

	"campus-recommender/core/database"
	"campus-recommender/core/logger"
	"campus-recommender/modules/event/entity"

	"github.com/google/uuid"
)

const eventColumns = `id, title, slug, description, start_datetime, end_datetime, location,
	       poster_url, created_by, ai_event_type, ai_keywords, ai_summary, embedding_json,
	       created_at, updated_at`

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListEvents(ctx context.Context) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	UpdatePosterURL(ctx context.Context, id uuid.UUID, posterURL string) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (title, slug, description, start_datetime, end_datetime, location,
		                    created_by, ai_event_type, ai_keywords, ai_summary, embedding_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Slug, event.Description, event.StartDatetime, event.EndDatetime,
		event.Location, event.CreatedBy, event.AIEventType, event.AIKeywords,
		event.AISummary, event.EmbeddingJSON)

	if err != nil {
		logger.Error("EventRepository:CreateEvent", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", "error", err)
		return nil, err
	}

	return &event, nil
}

// ListEvents returns all events ordered by ascending start time; the
// recommendation pipeline relies on this ordering for tie-breaks
func (r *EventRepository) ListEvents(ctx context.Context) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_datetime ASC`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query)
	if err != nil {
		logger.Error("EventRepository:ListEvents", "error", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, slug = $3, description = $4, start_datetime = $5, end_datetime = $6,
		    location = $7, ai_event_type = $8, ai_keywords = $9, ai_summary = $10,
		    embedding_json = $11, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Title, event.Slug, event.Description, event.StartDatetime,
		event.EndDatetime, event.Location, event.AIEventType, event.AIKeywords,
		event.AISummary, event.EmbeddingJSON)

	if err != nil {
		logger.Error("EventRepository:UpdateEvent", "error", err)
		return err
	}

	return nil
}

func (r *EventRepository) UpdatePosterURL(ctx context.Context, id uuid.UUID, posterURL string) error {
	query := `UPDATE events SET poster_url = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, posterURL)
	if err != nil {
		logger.Error("EventRepository:UpdatePosterURL", "error", err)
		return err
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", "error", err)
		return err
	}
	return nil
}
