package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"campus-recommender/core/ai"
	"campus-recommender/core/errors"
	"campus-recommender/core/logger"
	"campus-recommender/core/storage"
	"campus-recommender/modules/event/dto"
	"campus-recommender/modules/event/entity"
	"campus-recommender/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventService handles event business logic including AI enrichment
type EventService struct {
	repo    repository.EventRepositoryInterface
	aiCli   ai.Client
	storage storage.Storage
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, adminID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	ListEvents(ctx context.Context) ([]dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError
	UploadPoster(ctx context.Context, eventID uuid.UUID, filename, contentType string, body io.Reader) (*dto.EventResponse, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface, aiCli ai.Client, storage storage.Storage) EventServiceInterface {
	return &EventService{
		repo:    repo,
		aiCli:   aiCli,
		storage: storage,
	}
}

// enrich runs extraction and embedding for an event. Both calls must
// succeed before anything touches the database: a failed enrichment
// aborts the whole write, never leaving partial AI fields behind.
func (s *EventService) enrich(ctx context.Context, event *entity.Event) *errors.AppError {
	extracted, err := s.aiCli.ExtractEventFields(ctx, event.Title, event.Description)
	if err != nil {
		logger.Error("EventService:enrich:ExtractEventFields", "error", err)
		return errors.NewAppError(errors.ErrDependencyFailed, "AI extraction failed", err)
	}

	keywordsCSV := strings.Join(extracted.Keywords, ",")
	embedInput := fmt.Sprintf("%s\n%s\nKeywords: %s",
		event.Title, extracted.Summary, strings.Join(extracted.Keywords, ", "))

	vec, err := s.aiCli.EmbedText(ctx, embedInput)
	if err != nil {
		logger.Error("EventService:enrich:EmbedText", "error", err)
		return errors.NewAppError(errors.ErrDependencyFailed, "AI embedding failed", err)
	}

	vecJSON, err := json.Marshal(vec)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to encode embedding", err)
	}

	embeddingJSON := string(vecJSON)
	event.AIEventType = &extracted.EventType
	event.AIKeywords = &keywordsCSV
	event.AISummary = &extracted.Summary
	event.EmbeddingJSON = &embeddingJSON
	return nil
}

// CreateEvent validates dates, enriches via the AI provider and only
// then persists
func (s *EventService) CreateEvent(ctx context.Context, adminID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_datetime must be after start_datetime", nil)
	}

	event := &entity.Event{
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      req.Location,
		CreatedBy:     adminID,
	}

	if appErr := s.enrich(ctx, event); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created), nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return dto.ToEventResponse(event), nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *dto.ToEventResponse(&events[i]))
	}

	return result, nil
}

// UpdateEvent replaces all event fields and re-runs enrichment; the
// stored embedding always describes the current title and description
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, *errors.AppError) {
	if !req.EndDatetime.After(req.StartDatetime) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_datetime must be after start_datetime", nil)
	}

	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	event.Title = req.Title
	event.Slug = slug.Make(req.Title)
	event.Description = req.Description
	event.StartDatetime = req.StartDatetime
	event.EndDatetime = req.EndDatetime
	event.Location = req.Location

	if appErr := s.enrich(ctx, event); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventResponse(event), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	return nil
}

// UploadPoster stores a poster image in S3 and records its URL
func (s *EventService) UploadPoster(ctx context.Context, eventID uuid.UUID, filename, contentType string, body io.Reader) (*dto.EventResponse, *errors.AppError) {
	if s.storage == nil {
		return nil, errors.NewAppError(errors.ErrDependencyFailed, "Poster storage is not configured", nil)
	}

	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = strings.ToLower(filename[idx:])
	}

	key := fmt.Sprintf("posters/%s%s", eventID.String(), ext)
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDependencyFailed, "Failed to upload poster", err)
	}

	if err := s.repo.UpdatePosterURL(ctx, eventID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save poster URL", err)
	}

	event.PosterURL = &url
	return dto.ToEventResponse(event), nil
}
