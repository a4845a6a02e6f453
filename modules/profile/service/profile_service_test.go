package service

import (
	"context"
	"testing"

	coreEntity "campus-recommender/core/entity"
	"campus-recommender/core/errors"
	"campus-recommender/modules/profile/dto"
	"campus-recommender/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profile *entity.StudentProfile
	slots   []entity.AvailabilitySlot
	err     error

	savedInterests string
	savedSlots     []entity.AvailabilitySlot
	replaceCalls   int
}

func (f *fakeProfileRepo) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.StudentProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfileRepo) GetSlotsByProfileID(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	return f.slots, f.err
}

func (f *fakeProfileRepo) ReplaceProfile(ctx context.Context, userID uuid.UUID, interestsCSV string, slots []entity.AvailabilitySlot) (*entity.StudentProfile, error) {
	f.replaceCalls++
	f.savedInterests = interestsCSV
	f.savedSlots = slots
	return &entity.StudentProfile{UserID: userID, Interests: interestsCSV}, f.err
}

func TestNormalizeDay(t *testing.T) {
	cases := map[string]string{
		"monday":   "Mon",
		"MON":      "Mon",
		"Tue":      "Tue",
		"saturday": "Sat",
		" sunday ": "Sun",
		"":         "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeDay(input), "input %q", input)
	}
}

func TestUpsertProfile_RequiresAnInterest(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)

	appErr := svc.UpsertProfile(context.Background(), uuid.New(), &dto.ProfileRequest{
		Interests: []string{"  ", ""},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, 0, repo.replaceCalls)
}

func TestUpsertProfile_RejectsInvalidDay(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	appErr := svc.UpsertProfile(context.Background(), uuid.New(), &dto.ProfileRequest{
		Interests: []string{"ai"},
		Availability: []dto.SlotRequest{
			{Day: "Someday", Start: "09:00", End: "10:00"},
		},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Contains(t, appErr.Message, "Invalid day")
}

func TestUpsertProfile_RejectsInvertedSlot(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	appErr := svc.UpsertProfile(context.Background(), uuid.New(), &dto.ProfileRequest{
		Interests: []string{"ai"},
		Availability: []dto.SlotRequest{
			{Day: "Mon", Start: "14:00", End: "14:00"},
		},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "Invalid slot: Mon 14:00-14:00", appErr.Message)
}

func TestUpsertProfile_RejectsUnparseableTime(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	appErr := svc.UpsertProfile(context.Background(), uuid.New(), &dto.ProfileRequest{
		Interests: []string{"ai"},
		Availability: []dto.SlotRequest{
			{Day: "Mon", Start: "25:00", End: "26:00"},
		},
	})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestUpsertProfile_NormalizesAndPersists(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)

	appErr := svc.UpsertProfile(context.Background(), uuid.New(), &dto.ProfileRequest{
		Interests: []string{" AI ", "Music", ""},
		Availability: []dto.SlotRequest{
			{Day: "monday", Start: "09:00", End: "12:30"},
			{Day: "FRIDAY", Start: "14:00", End: "16:00"},
		},
	})

	require.Nil(t, appErr)
	require.Equal(t, 1, repo.replaceCalls)
	assert.Equal(t, "ai,music", repo.savedInterests)
	require.Len(t, repo.savedSlots, 2)
	assert.Equal(t, "Mon", repo.savedSlots[0].DayOfWeek)
	assert.Equal(t, entity.NewClockTime(9, 0), repo.savedSlots[0].StartTime)
	assert.Equal(t, entity.NewClockTime(12, 30), repo.savedSlots[0].EndTime)
	assert.Equal(t, "Fri", repo.savedSlots[1].DayOfWeek)
}

func TestGetProfile_MissingProfileReportsNotExists(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	resp, appErr := svc.GetProfile(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.False(t, resp.Exists)
	assert.Empty(t, resp.Interests)
}

func TestGetProfile_ReturnsInterestsAndSlots(t *testing.T) {
	profileID := uuid.New()
	repo := &fakeProfileRepo{
		profile: &entity.StudentProfile{
			UserID:     uuid.New(),
			Interests:  "ai, music",
			BaseEntity: coreEntity.BaseEntity{ID: profileID},
		},
		slots: []entity.AvailabilitySlot{
			{ProfileID: profileID, DayOfWeek: "Mon", StartTime: entity.NewClockTime(9, 0), EndTime: entity.NewClockTime(12, 0)},
		},
	}
	svc := NewProfileService(repo)

	resp, appErr := svc.GetProfile(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.True(t, resp.Exists)
	assert.Equal(t, []string{"ai", "music"}, resp.Interests)
	require.Len(t, resp.Availability, 1)
	assert.Equal(t, dto.SlotResponse{Day: "Mon", Start: "09:00", End: "12:00"}, resp.Availability[0])
}

func TestSplitInterests(t *testing.T) {
	assert.Equal(t, []string{"ai", "music"}, SplitInterests("ai, music,"))
	assert.Empty(t, SplitInterests(""))
	assert.Empty(t, SplitInterests(" , ,"))
}
