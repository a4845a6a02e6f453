package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campus-recommender/core/ai"
	"campus-recommender/core/errors"
	"campus-recommender/modules/event/dto"
	"campus-recommender/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	created *entity.Event
	events  map[uuid.UUID]*entity.Event
	err     error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*entity.Event{}}
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event.ID = uuid.New()
	f.created = event
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return f.events[id], f.err
}

func (f *fakeEventRepo) ListEvents(ctx context.Context) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, f.err
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, event *entity.Event) error {
	f.events[event.ID] = event
	return f.err
}

func (f *fakeEventRepo) UpdatePosterURL(ctx context.Context, id uuid.UUID, posterURL string) error {
	if e, ok := f.events[id]; ok {
		e.PosterURL = &posterURL
	}
	return f.err
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return f.err
}

type fakeAIClient struct {
	fields       *ai.ExtractedFields
	extractErr   error
	vec          []float64
	embedErr     error
	extractCalls int
	embedCalls   int
	embedInput   string
}

func (f *fakeAIClient) ExtractEventFields(ctx context.Context, title, description string) (*ai.ExtractedFields, error) {
	f.extractCalls++
	return f.fields, f.extractErr
}

func (f *fakeAIClient) EmbedText(ctx context.Context, text string) ([]float64, error) {
	f.embedCalls++
	f.embedInput = text
	return f.vec, f.embedErr
}

func validRequest() *dto.EventRequest {
	start := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	return &dto.EventRequest{
		Title:         "AI Workshop Night",
		Description:   "Hands-on introduction to machine learning.",
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		Location:      "Building A",
	}
}

func enrichedAI() *fakeAIClient {
	return &fakeAIClient{
		fields: &ai.ExtractedFields{
			EventType: "workshop",
			Keywords:  []string{"ai", "machine learning", "workshop"},
			Summary:   "An evening workshop on machine learning basics.",
		},
		vec: []float64{0.1, 0.2, 0.3},
	}
}

func TestCreateEvent_EnrichesBeforePersisting(t *testing.T) {
	repo := newFakeEventRepo()
	aiCli := enrichedAI()
	svc := NewEventService(repo, aiCli, nil)

	resp, appErr := svc.CreateEvent(context.Background(), uuid.New(), validRequest())

	require.Nil(t, appErr)
	require.NotNil(t, repo.created)
	assert.Equal(t, "ai-workshop-night", resp.Slug)
	assert.Equal(t, "workshop", resp.AIEventType)
	assert.Equal(t, "ai,machine learning,workshop", resp.AIKeywords)
	assert.Equal(t, "An evening workshop on machine learning basics.", resp.AISummary)
	require.NotNil(t, repo.created.EmbeddingJSON)
	assert.Equal(t, "[0.1,0.2,0.3]", *repo.created.EmbeddingJSON)

	// embedding input combines title, summary and display-joined keywords
	assert.Equal(t,
		"AI Workshop Night\nAn evening workshop on machine learning basics.\nKeywords: ai, machine learning, workshop",
		aiCli.embedInput)
}

func TestCreateEvent_ExtractionFailureWritesNothing(t *testing.T) {
	repo := newFakeEventRepo()
	aiCli := enrichedAI()
	aiCli.extractErr = fmt.Errorf("model overloaded")
	svc := NewEventService(repo, aiCli, nil)

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), validRequest())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrDependencyFailed, appErr.Code)
	assert.Nil(t, repo.created)
	assert.Equal(t, 0, aiCli.embedCalls)
}

func TestCreateEvent_EmbeddingFailureWritesNothing(t *testing.T) {
	repo := newFakeEventRepo()
	aiCli := enrichedAI()
	aiCli.embedErr = fmt.Errorf("model overloaded")
	svc := NewEventService(repo, aiCli, nil)

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), validRequest())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrDependencyFailed, appErr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateEvent_RejectsInvertedDates(t *testing.T) {
	repo := newFakeEventRepo()
	aiCli := enrichedAI()
	svc := NewEventService(repo, aiCli, nil)

	req := validRequest()
	req.EndDatetime = req.StartDatetime

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), req)

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, 0, aiCli.extractCalls)
}

func TestGetEventByID_UnknownIDIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), enrichedAI(), nil)

	_, appErr := svc.GetEventByID(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestUpdateEvent_ReEnriches(t *testing.T) {
	repo := newFakeEventRepo()
	aiCli := enrichedAI()
	svc := NewEventService(repo, aiCli, nil)

	created, appErr := svc.CreateEvent(context.Background(), uuid.New(), validRequest())
	require.Nil(t, appErr)

	req := validRequest()
	req.Title = "Renamed Workshop"

	id := uuid.MustParse(created.ID)
	updated, appErr := svc.UpdateEvent(context.Background(), id, req)

	require.Nil(t, appErr)
	assert.Equal(t, "Renamed Workshop", updated.Title)
	assert.Equal(t, "renamed-workshop", updated.Slug)
	assert.Equal(t, 2, aiCli.extractCalls)
	assert.Equal(t, 2, aiCli.embedCalls)
}

func TestUpdateEvent_UnknownIDIsNotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), enrichedAI(), nil)

	_, appErr := svc.UpdateEvent(context.Background(), uuid.New(), validRequest())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
