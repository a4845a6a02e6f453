package service

import (
	"context"
	"sort"
	"strings"

	"campus-recommender/core/ai"
	"campus-recommender/core/constants"
	"campus-recommender/core/errors"
	"campus-recommender/core/logger"
	"campus-recommender/modules/recommendation/dto"

	eventDto "campus-recommender/modules/event/dto"
	eventEntity "campus-recommender/modules/event/entity"
	eventRepo "campus-recommender/modules/event/repository"
	profileRepo "campus-recommender/modules/profile/repository"
	profileService "campus-recommender/modules/profile/service"

	"github.com/google/uuid"
)

// RecommendationService orchestrates conflict filtering, similarity
// scoring and explanation building
type RecommendationService struct {
	profiles profileRepo.ProfileRepositoryInterface
	events   eventRepo.EventRepositoryInterface
	aiCli    ai.Client
}

// RecommendationServiceInterface defines the service contract
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, userID uuid.UUID) ([]dto.RecommendationResponse, *errors.AppError)
}

func NewRecommendationService(profiles profileRepo.ProfileRepositoryInterface, events eventRepo.EventRepositoryInterface, aiCli ai.Client) RecommendationServiceInterface {
	return &RecommendationService{
		profiles: profiles,
		events:   events,
		aiCli:    aiCli,
	}
}

type scoredEvent struct {
	event *eventEntity.Event
	score float64
}

// Recommend returns up to 10 events that fit inside the student's
// availability, ranked by embedding similarity to their interests.
// An empty list after filtering is a success with zero results; a
// failed embedding call is a hard error, never a silently unranked
// list.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]dto.RecommendationResponse, *errors.AppError) {
	profile, err := s.profiles.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if profile == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Create profile first", nil)
	}

	interests := profileService.SplitInterests(profile.Interests)

	slots, err := s.profiles.GetSlotsByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get availability", err)
	}

	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	// conflict filter; events arrive in ascending start-time order and
	// keep it, which later serves as the tie-break
	allowed := make([]*eventEntity.Event, 0, len(events))
	for i := range events {
		if IsCompatible(&events[i], slots) {
			allowed = append(allowed, &events[i])
		}
	}

	// nothing fits: skip the embedding call entirely
	if len(allowed) == 0 {
		return []dto.RecommendationResponse{}, nil
	}

	studentVec, err := s.aiCli.EmbedText(ctx, strings.Join(interests, " "))
	if err != nil {
		logger.Error("RecommendationService:Recommend:EmbedText", "error", err)
		return nil, errors.NewAppError(errors.ErrDependencyFailed, "Failed to embed interests", err)
	}

	scored := make([]scoredEvent, 0, len(allowed))
	for _, event := range allowed {
		vec := ParseVector(event.EmbeddingJSON)
		if vec == nil {
			// not yet enriched; excluded, not an error
			continue
		}

		score, err := Cosine(studentVec, vec)
		if err != nil {
			logger.Error("RecommendationService:Recommend:Cosine",
				"error", err, "event_id", event.ID.String())
			return nil, errors.NewAppError(errors.ErrDataIntegrity, "Stored embedding is corrupted", err)
		}

		scored = append(scored, scoredEvent{event: event, score: score})
	}

	// stable: equal scores keep ascending start-time order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > constants.MaxRecommendations {
		scored = scored[:constants.MaxRecommendations]
	}

	result := make([]dto.RecommendationResponse, 0, len(scored))
	for _, sc := range scored {
		keywordsCSV := ""
		if sc.event.AIKeywords != nil {
			keywordsCSV = *sc.event.AIKeywords
		}

		result = append(result, dto.RecommendationResponse{
			Event: *eventDto.ToEventResponse(sc.event),
			Score: sc.score,
			Why:   BuildWhy(interests, keywordsCSV),
		})
	}

	return result, nil
}
