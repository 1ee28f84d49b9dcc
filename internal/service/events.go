package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/internal/domain"
	"github.com/TheoIlgazCelik/uwh-team-maker/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EventService struct {
	events   storage.EventStorage
	rsvps    storage.RsvpStorage
	roster   storage.RosterStorage
	notifier Notifier
	log      *logrus.Entry
}

func NewEventService(l *logrus.Logger, events storage.EventStorage, rsvps storage.RsvpStorage, roster storage.RosterStorage, notifier Notifier) *EventService {
	return &EventService{
		events:   events,
		rsvps:    rsvps,
		roster:   roster,
		notifier: notifier,
		log:      l.WithFields(map[string]interface{}{"from": "event-service"}),
	}
}

// SetNotifier swaps the notifier. Call before serving, the field is
// not guarded.
func (s *EventService) SetNotifier(n Notifier) {
	s.notifier = n
}

// List returns events ordered by start time, soonest first.
// Unscheduled events sort last.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartOrFarFuture().Before(events[j].StartOrFarFuture())
	})
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	return s.events.GetEvent(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return domain.Event{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	event.ID = uuid.New()
	event.CreatedAt = time.Now()
	if event.StartTime.IsZero() {
		event.StartTime = time.Now().Add(time.Hour)
	}
	created, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, err
	}
	s.log.WithFields(logrus.Fields{"event": created.ID, "title": created.Title}).Info("event created")
	s.notifier.EventCreated(created)
	return created, nil
}

func (s *EventService) Update(ctx context.Context, event domain.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.events.UpdateEvent(ctx, event)
}

// Rsvp records or overwrites a user's answer for an event. Last write
// wins.
func (s *EventService) Rsvp(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, status domain.RsvpStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: rsvp status must be yes or no", domain.ErrInvalidInput)
	}
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return err
	}
	if _, err := s.roster.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.rsvps.UpsertRsvp(ctx, domain.Rsvp{
		EventID:     eventID,
		UserID:      userID,
		Status:      status,
		RespondedAt: time.Now(),
	})
}

// Exists reports whether an event with this exact title and start
// time is already scheduled.
func (s *EventService) Exists(ctx context.Context, title string, start time.Time) (bool, error) {
	return s.events.EventExists(ctx, title, start)
}

// ResolveAttendees returns the confirmed attendees with their current
// skills, ordered by user id ascending. An event with no yes answers
// resolves to an empty slice.
func (s *EventService) ResolveAttendees(ctx context.Context, eventID uuid.UUID) ([]domain.User, error) {
	if _, err := s.events.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}
	ids, err := s.rsvps.ListYes(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	attendees, err := s.roster.GetUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	domain.SortUsersByID(attendees)
	return attendees, nil
}
