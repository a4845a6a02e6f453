package service

import (
	"context"
	"fmt"

	"campus-recommender/core/errors"
	"campus-recommender/core/params"
	"campus-recommender/core/worker"
	"campus-recommender/modules/notification/dto"
	"campus-recommender/modules/notification/entity"
	"campus-recommender/modules/notification/repository"

	"github.com/google/uuid"
)

// NotificationService handles notification business logic and acts as
// the sink for due event reminders
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NotificationServiceInterface defines the service contract
type NotificationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError
	GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError)
	NotifyEventReminder(ctx context.Context, payload worker.EventReminderPayload) error
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError {
	notif := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    entity.JSONB(req.Data),
		IsRead:  false,
	}

	if err := s.repo.Create(ctx, notif); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to create notification", err)
	}

	return nil
}

// NotifyEventReminder stores an in-app reminder for a saved event that
// starts soon. Called by the background worker.
func (s *NotificationService) NotifyEventReminder(ctx context.Context, payload worker.EventReminderPayload) error {
	notif := &entity.Notification{
		UserID:  payload.UserID,
		Title:   "Upcoming event",
		Message: fmt.Sprintf("%s starts at %s", payload.EventTitle, payload.StartsAt.Format("Mon Jan 2 15:04")),
		Type:    entity.TypeEventReminder,
		Data: entity.JSONB{
			"event_id":  payload.EventID.String(),
			"starts_at": payload.StartsAt,
		},
		IsRead: false,
	}

	return s.repo.Create(ctx, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError) {
	result, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get notifications", err)
	}

	return result, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark as read", err)
	}

	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark all as read", err)
	}

	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to count unread", err)
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}
