package service

import (
	"context"
	"fmt"
	"strings"

	"campus-recommender/core/errors"
	"campus-recommender/modules/profile/dto"
	"campus-recommender/modules/profile/entity"
	"campus-recommender/modules/profile/repository"

	"github.com/google/uuid"
)

var validDays = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true,
	"Fri": true, "Sat": true, "Sun": true,
}

// ProfileService handles student profile business logic
type ProfileService struct {
	repo repository.ProfileRepositoryInterface
}

// ProfileServiceInterface defines the service contract
type ProfileServiceInterface interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) *errors.AppError
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
}

func NewProfileService(repo repository.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{repo: repo}
}

// NormalizeDay maps any day spelling ("monday", "MON") to its
// three-letter title-case abbreviation
func NormalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if len(day) > 3 {
		day = day[:3]
	}
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
}

// UpsertProfile validates and atomically replaces the student's
// interests and availability slots
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *dto.ProfileRequest) *errors.AppError {
	interests := make([]string, 0, len(req.Interests))
	for _, raw := range req.Interests {
		if trimmed := strings.ToLower(strings.TrimSpace(raw)); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	if len(interests) == 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "At least 1 interest required", nil)
	}

	slots := make([]entity.AvailabilitySlot, 0, len(req.Availability))
	for _, slotReq := range req.Availability {
		day := NormalizeDay(slotReq.Day)
		if !validDays[day] {
			return errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Invalid day: %s", slotReq.Day), nil)
		}

		start, err := entity.ParseClock(slotReq.Start)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Invalid start time: %s", slotReq.Start), err)
		}
		end, err := entity.ParseClock(slotReq.End)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Invalid end time: %s", slotReq.End), err)
		}
		if end <= start {
			return errors.NewAppError(errors.ErrInvalidInput,
				fmt.Sprintf("Invalid slot: %s %s-%s", day, slotReq.Start, slotReq.End), nil)
		}

		slots = append(slots, entity.AvailabilitySlot{
			DayOfWeek: day,
			StartTime: start,
			EndTime:   end,
		})
	}

	if _, err := s.repo.ReplaceProfile(ctx, userID, strings.Join(interests, ","), slots); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save profile", err)
	}

	return nil
}

// GetProfile returns the profile, or Exists=false when none is saved
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if profile == nil {
		return &dto.ProfileResponse{Exists: false}, nil
	}

	slots, err := s.repo.GetSlotsByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	resp := &dto.ProfileResponse{
		Exists:       true,
		Interests:    SplitInterests(profile.Interests),
		Availability: make([]dto.SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Availability = append(resp.Availability, dto.SlotResponse{
			Day:   slot.DayOfWeek,
			Start: slot.StartTime.String(),
			End:   slot.EndTime.String(),
		})
	}

	return resp, nil
}

// SplitInterests parses the comma-separated at-rest form into a clean
// list; this is the only place the CSV encoding leaks out of storage
func SplitInterests(csv string) []string {
	parts := strings.Split(csv, ",")
	interests := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	return interests
}
