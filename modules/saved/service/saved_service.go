package service

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"campus-recommender/core/errors"
	"campus-recommender/core/logger"
	"campus-recommender/core/worker"
	eventDto "campus-recommender/modules/event/dto"
	eventRepository "campus-recommender/modules/event/repository"
	"campus-recommender/modules/saved/dto"
	"campus-recommender/modules/saved/repository"

	"github.com/google/uuid"
)

const reminderLead = 24 * time.Hour

// SavedService handles event bookmarks, reminder scheduling and
// calendar export
type SavedService struct {
	repo      repository.SavedRepositoryInterface
	eventRepo eventRepository.EventRepositoryInterface
	enqueuer  worker.Enqueuer
}

// SavedServiceInterface defines the service contract
type SavedServiceInterface interface {
	SaveEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError
	ListSavedIDs(ctx context.Context, userID uuid.UUID) (*dto.SavedIDsResponse, *errors.AppError)
	ListSavedEvents(ctx context.Context, userID uuid.UUID) (*dto.SavedEventsResponse, *errors.AppError)
	UnsaveEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError
	ExportICS(ctx context.Context, userID uuid.UUID) (*bytes.Buffer, string, *errors.AppError)
}

func NewSavedService(repo repository.SavedRepositoryInterface, eventRepo eventRepository.EventRepositoryInterface, enqueuer worker.Enqueuer) SavedServiceInterface {
	return &SavedService{repo: repo, eventRepo: eventRepo, enqueuer: enqueuer}
}

// SaveEvent bookmarks an event and schedules a reminder 24h before it
// starts. A failed reminder enqueue does not undo the bookmark.
func (s *SavedService) SaveEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if _, err := s.repo.SaveEvent(ctx, userID, eventID); err != nil {
		if stderrors.Is(err, repository.ErrDuplicateSave) {
			return errors.NewAppError(errors.ErrAlreadyExists, "Event already saved", nil)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save event", err)
	}

	if s.enqueuer != nil {
		remindAt := event.StartDatetime.Add(-reminderLead)
		if remindAt.After(time.Now()) {
			payload := worker.EventReminderPayload{
				UserID:     userID,
				EventID:    event.ID,
				EventTitle: event.Title,
				StartsAt:   event.StartDatetime,
			}
			if err := s.enqueuer.EnqueueEventReminder(payload, remindAt); err != nil {
				logger.Error("SavedService:SaveEvent", "error", err, "event_id", event.ID)
			}
		}
	}

	return nil
}

// ListSavedIDs returns the IDs of the caller's bookmarked events
func (s *SavedService) ListSavedIDs(ctx context.Context, userID uuid.UUID) (*dto.SavedIDsResponse, *errors.AppError) {
	ids, err := s.repo.GetSavedEventIDs(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list saved events", err)
	}

	resp := &dto.SavedIDsResponse{SavedEventIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.SavedEventIDs = append(resp.SavedEventIDs, id.String())
	}

	return resp, nil
}

// ListSavedEvents returns the caller's bookmarked events in full
func (s *SavedService) ListSavedEvents(ctx context.Context, userID uuid.UUID) (*dto.SavedEventsResponse, *errors.AppError) {
	events, err := s.repo.ListSavedEvents(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list saved events", err)
	}

	resp := &dto.SavedEventsResponse{Events: make([]eventDto.EventResponse, 0, len(events))}
	for i := range events {
		resp.Events = append(resp.Events, *eventDto.ToEventResponse(&events[i]))
	}

	return resp, nil
}

// UnsaveEvent removes a bookmark
func (s *SavedService) UnsaveEvent(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	deleted, err := s.repo.DeleteSavedEvent(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to unsave event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Saved event not found", nil)
	}

	return nil
}

// ExportICS renders the caller's saved events as an iCalendar file
func (s *SavedService) ExportICS(ctx context.Context, userID uuid.UUID) (*bytes.Buffer, string, *errors.AppError) {
	events, err := s.repo.ListSavedEvents(ctx, userID)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrInternalServer, "Failed to list saved events", err)
	}

	buf := &bytes.Buffer{}
	writeICSLine(buf, "BEGIN:VCALENDAR")
	writeICSLine(buf, "VERSION:2.0")
	writeICSLine(buf, "PRODID:-//campus-recommender//EN")
	writeICSLine(buf, "CALSCALE:GREGORIAN")

	now := time.Now().UTC()
	for i := range events {
		event := &events[i]
		writeICSLine(buf, "BEGIN:VEVENT")
		writeICSLine(buf, fmt.Sprintf("UID:%s@campus-recommender", event.ID))
		writeICSLine(buf, "DTSTAMP:"+icsTime(now))
		writeICSLine(buf, "DTSTART:"+icsTime(event.StartDatetime))
		writeICSLine(buf, "DTEND:"+icsTime(event.EndDatetime))
		writeICSLine(buf, "SUMMARY:"+escapeICS(event.Title))
		writeICSLine(buf, "LOCATION:"+escapeICS(event.Location))
		writeICSLine(buf, "DESCRIPTION:"+escapeICS(event.Description))
		writeICSLine(buf, "END:VEVENT")
	}

	writeICSLine(buf, "END:VCALENDAR")

	filename := fmt.Sprintf("saved_events_%s.ics", now.Format("2006-01-02"))
	return buf, filename, nil
}

// icsTime formats a timestamp in UTC basic format per RFC 5545
func icsTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes the characters RFC 5545 reserves in text values
func escapeICS(text string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return replacer.Replace(text)
}

// writeICSLine emits a content line with the CRLF terminator the
// format requires, folding lines longer than 75 octets
func writeICSLine(buf *bytes.Buffer, line string) {
	const maxLen = 75
	for len(line) > maxLen {
		buf.WriteString(line[:maxLen])
		buf.WriteString("\r\n ")
		line = line[maxLen:]
	}
	buf.WriteString(line)
	buf.WriteString("\r\n")
}
