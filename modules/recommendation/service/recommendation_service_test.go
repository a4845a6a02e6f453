package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"campus-recommender/core/ai"
	coreEntity "campus-recommender/core/entity"
	"campus-recommender/core/errors"
	eventEntity "campus-recommender/modules/event/entity"
	profileEntity "campus-recommender/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profile *profileEntity.StudentProfile
	slots   []profileEntity.AvailabilitySlot
	err     error
}

func (f *fakeProfileRepo) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*profileEntity.StudentProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) GetSlotsByProfileID(ctx context.Context, profileID uuid.UUID) ([]profileEntity.AvailabilitySlot, error) {
	return f.slots, f.err
}

func (f *fakeProfileRepo) ReplaceProfile(ctx context.Context, userID uuid.UUID, interestsCSV string, slots []profileEntity.AvailabilitySlot) (*profileEntity.StudentProfile, error) {
	return f.profile, f.err
}

type fakeEventRepo struct {
	events []eventEntity.Event
	err    error
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *eventEntity.Event) (*eventEntity.Event, error) {
	return event, f.err
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return nil, f.err
}

func (f *fakeEventRepo) ListEvents(ctx context.Context) ([]eventEntity.Event, error) {
	return f.events, f.err
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, event *eventEntity.Event) error { return f.err }

func (f *fakeEventRepo) UpdatePosterURL(ctx context.Context, id uuid.UUID, posterURL string) error {
	return f.err
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error { return f.err }

type fakeAIClient struct {
	vec        []float64
	embedErr   error
	embedCalls int
	embedInput string
}

func (f *fakeAIClient) ExtractEventFields(ctx context.Context, title, description string) (*ai.ExtractedFields, error) {
	return &ai.ExtractedFields{}, nil
}

func (f *fakeAIClient) EmbedText(ctx context.Context, text string) ([]float64, error) {
	f.embedCalls++
	f.embedInput = text
	return f.vec, f.embedErr
}

func studentProfile(interests string) *profileEntity.StudentProfile {
	return &profileEntity.StudentProfile{
		UserID:     uuid.New(),
		Interests:  interests,
		BaseEntity: coreEntity.BaseEntity{ID: uuid.New()},
	}
}

func mondaySlots() []profileEntity.AvailabilitySlot {
	return []profileEntity.AvailabilitySlot{
		{DayOfWeek: "Mon", StartTime: profileEntity.NewClockTime(8, 0), EndTime: profileEntity.NewClockTime(20, 0)},
	}
}

// 2026-03-02 is a Monday; offsetMinutes staggers start times so that
// list order is deterministic
func compatibleEvent(title string, offsetMinutes int, embedding []float64) eventEntity.Event {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC).Add(time.Duration(offsetMinutes) * time.Minute)
	event := eventEntity.Event{
		Title:         title,
		StartDatetime: start,
		EndDatetime:   start.Add(time.Hour),
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}
	if embedding != nil {
		raw, _ := json.Marshal(embedding)
		s := string(raw)
		event.EmbeddingJSON = &s
	}
	return event
}

func TestRecommend_NoProfile(t *testing.T) {
	svc := NewRecommendationService(&fakeProfileRepo{}, &fakeEventRepo{}, &fakeAIClient{})

	_, appErr := svc.Recommend(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
	assert.Equal(t, "Create profile first", appErr.Message)
}

func TestRecommend_NoCompatibleEventsSkipsEmbedding(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai,music"), slots: mondaySlots()}
	// 2026-03-03 is a Tuesday, outside the Monday slot
	start := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	events := &fakeEventRepo{events: []eventEntity.Event{{
		Title:         "Tuesday Talk",
		StartDatetime: start,
		EndDatetime:   start.Add(time.Hour),
		BaseEntity:    coreEntity.BaseEntity{ID: uuid.New()},
	}}}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Empty(t, result)
	assert.NotNil(t, result)
	assert.Equal(t, 0, aiCli.embedCalls)
}

func TestRecommend_RanksBySimilarity(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai, music"), slots: mondaySlots()}
	events := &fakeEventRepo{events: []eventEntity.Event{
		compatibleEvent("Weak Match", 0, []float64{0.1, 0.9}),
		compatibleEvent("Strong Match", 10, []float64{0.9, 0.1}),
		compatibleEvent("Medium Match", 20, []float64{0.5, 0.5}),
	}}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	require.Len(t, result, 3)
	assert.Equal(t, "Strong Match", result[0].Event.Title)
	assert.Equal(t, "Medium Match", result[1].Event.Title)
	assert.Equal(t, "Weak Match", result[2].Event.Title)
	assert.GreaterOrEqual(t, result[0].Score, result[1].Score)
	assert.GreaterOrEqual(t, result[1].Score, result[2].Score)

	// interests are embedded space-joined, once
	assert.Equal(t, 1, aiCli.embedCalls)
	assert.Equal(t, "ai music", aiCli.embedInput)
}

func TestRecommend_CapsAtTen(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai"), slots: mondaySlots()}

	var all []eventEntity.Event
	for i := 0; i < 15; i++ {
		all = append(all, compatibleEvent(fmt.Sprintf("Event %d", i), i*20, []float64{1, 0}))
	}
	events := &fakeEventRepo{events: all}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Len(t, result, 10)
}

func TestRecommend_EqualScoresKeepStartTimeOrder(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai"), slots: mondaySlots()}
	events := &fakeEventRepo{events: []eventEntity.Event{
		compatibleEvent("Earlier", 0, []float64{1, 0}),
		compatibleEvent("Later", 30, []float64{1, 0}),
	}}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	require.Len(t, result, 2)
	assert.Equal(t, "Earlier", result[0].Event.Title)
	assert.Equal(t, "Later", result[1].Event.Title)
}

func TestRecommend_SkipsEventsWithoutEmbedding(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai"), slots: mondaySlots()}
	events := &fakeEventRepo{events: []eventEntity.Event{
		compatibleEvent("Enriched", 0, []float64{1, 0}),
		compatibleEvent("Not Enriched", 10, nil),
	}}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	require.Len(t, result, 1)
	assert.Equal(t, "Enriched", result[0].Event.Title)
}

func TestRecommend_EmbeddingFailureIsHardError(t *testing.T) {
	aiCli := &fakeAIClient{embedErr: fmt.Errorf("provider down")}
	profiles := &fakeProfileRepo{profile: studentProfile("ai"), slots: mondaySlots()}
	events := &fakeEventRepo{events: []eventEntity.Event{
		compatibleEvent("Any", 0, []float64{1, 0}),
	}}

	svc := NewRecommendationService(profiles, events, aiCli)
	_, appErr := svc.Recommend(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrDependencyFailed, appErr.Code)
}

func TestRecommend_DimensionMismatchIsDataIntegrityError(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai"), slots: mondaySlots()}
	events := &fakeEventRepo{events: []eventEntity.Event{
		compatibleEvent("Bad Dimensions", 0, []float64{1, 0, 0}),
	}}

	svc := NewRecommendationService(profiles, events, aiCli)
	_, appErr := svc.Recommend(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrDataIntegrity, appErr.Code)
}

func TestRecommend_WhyReflectsKeywordOverlap(t *testing.T) {
	aiCli := &fakeAIClient{vec: []float64{1, 0}}
	profiles := &fakeProfileRepo{profile: studentProfile("ai,chess"), slots: mondaySlots()}

	matched := compatibleEvent("AI Night", 0, []float64{1, 0})
	keywords := "ai,robotics"
	matched.AIKeywords = &keywords

	unmatched := compatibleEvent("Pottery", 10, []float64{0.5, 0.5})
	potteryKeywords := "pottery,clay"
	unmatched.AIKeywords = &potteryKeywords

	events := &fakeEventRepo{events: []eventEntity.Event{matched, unmatched}}

	svc := NewRecommendationService(profiles, events, aiCli)
	result, appErr := svc.Recommend(context.Background(), uuid.New())

	require.Nil(t, appErr)
	require.Len(t, result, 2)
	assert.Equal(t,
		"Recommended because it matches your interests: ai and fits your availability.",
		result[0].Why)
	assert.Equal(t,
		"Recommended because it fits your availability and is semantically similar to your interests.",
		result[1].Why)
}
