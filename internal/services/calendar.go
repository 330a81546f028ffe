package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"chapterhub/internal/domain"
)

const (
	defaultCategoryColor = "#6B7280"
	defaultCategoryIcon  = "calendar"
)

var categoryColors = map[string]string{
	domain.CategoryCompetition: "#DC2626",
	domain.CategoryMeeting:     "#2563EB",
	domain.CategoryConference:  "#7C3AED",
	domain.CategoryWorkshop:    "#EA580C",
	domain.CategorySocial:      "#DB2777",
	domain.CategoryService:     "#16A34A",
	domain.CategoryFundraiser:  "#CA8A04",
}

var categoryIcons = map[string]string{
	domain.CategoryCompetition: "trophy",
	domain.CategoryMeeting:     "people",
	domain.CategoryConference:  "business",
	domain.CategoryWorkshop:    "construct",
	domain.CategorySocial:      "happy",
	domain.CategoryService:     "heart",
	domain.CategoryFundraiser:  "cash",
}

// CategoryColor returns the display color for an event category.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return defaultCategoryColor
}

// CategoryIcon returns the icon name for an event category.
func CategoryIcon(category string) string {
	if i, ok := categoryIcons[category]; ok {
		return i
	}
	return defaultCategoryIcon
}

type calendarService struct {
	eventRepo domain.EventRepository
	logger    *slog.Logger
	now       func() time.Time
	events    []domain.Event
}

// NewCalendarService creates a CalendarService backed by eventRepo. Queries read
// the list fetched by the last Load and the service's own writes.
func NewCalendarService(eventRepo domain.EventRepository, logger *slog.Logger) domain.CalendarService {
	return &calendarService{eventRepo: eventRepo, logger: orDiscard(logger), now: time.Now}
}

func (s *calendarService) Load(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	s.events = events
	return cloneAll(s.events, domain.Event.Clone), nil
}

// ListUpcoming returns events starting after now, soonest first.
func (s *calendarService) ListUpcoming() []domain.Event {
	now := s.now()
	return byStart(filter(s.events, domain.Event.Clone, func(e domain.Event) bool {
		return e.StartDate.After(now)
	}))
}

// ListToday returns events starting on today's calendar day.
func (s *calendarService) ListToday() []domain.Event {
	start := domain.StartOfDay(s.now())
	end := start.AddDate(0, 0, 1)
	return byStart(filter(s.events, domain.Event.Clone, func(e domain.Event) bool {
		return !e.StartDate.Before(start) && e.StartDate.Before(end)
	}))
}

func (s *calendarService) ListByCategory(category string) []domain.Event {
	return slices.DeleteFunc(s.ListUpcoming(), func(e domain.Event) bool {
		return !strings.EqualFold(e.Category, category)
	})
}

func (s *calendarService) ListCompetitions() []domain.Event {
	return slices.DeleteFunc(s.ListUpcoming(), func(e domain.Event) bool {
		return !e.IsCompetition
	})
}

// RegisteredEvents returns every event memberID is registered for, past ones
// included, ordered by start.
func (s *calendarService) RegisteredEvents(memberID string) []domain.Event {
	return byStart(filter(s.events, domain.Event.Clone, func(e domain.Event) bool {
		return e.IsRegistered(memberID)
	}))
}

// Register adds memberID to the event's registrations. It fails with
// domain.ErrNotRsvpRequired, domain.ErrEventFull or domain.ErrAlreadyRegistered,
// checked in that order.
func (s *calendarService) Register(ctx context.Context, memberID, eventID string) (domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	switch {
	case !event.RequiresRSVP:
		err = domain.ErrNotRsvpRequired
	case event.IsFull():
		err = domain.ErrEventFull
	case event.IsRegistered(memberID):
		err = domain.ErrAlreadyRegistered
	}
	if err != nil {
		s.logger.Info("registration rejected", "event_id", eventID, "member_id", memberID, "reason", err)
		return domain.Event{}, err
	}

	updated := event.WithRegistration(memberID)
	if err := s.eventRepo.Update(ctx, updated); err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}
	s.store(updated)
	s.logger.Debug("member registered", "event_id", eventID, "member_id", memberID)
	return updated.Clone(), nil
}

// Unregister removes memberID from the event's registrations, or fails with
// domain.ErrNotRegistered.
func (s *calendarService) Unregister(ctx context.Context, memberID, eventID string) (domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !event.IsRegistered(memberID) {
		s.logger.Info("unregistration rejected", "event_id", eventID, "member_id", memberID, "reason", domain.ErrNotRegistered)
		return domain.Event{}, domain.ErrNotRegistered
	}

	updated := event.WithoutRegistration(memberID)
	if err := s.eventRepo.Update(ctx, updated); err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}
	s.store(updated)
	s.logger.Debug("member unregistered", "event_id", eventID, "member_id", memberID)
	return updated.Clone(), nil
}

func (s *calendarService) IsRegistered(memberID, eventID string) bool {
	e, ok := s.find(eventID)
	return ok && e.IsRegistered(memberID)
}

// DaysUntil returns the calendar days from today to the event's start day,
// negative for past events.
func (s *calendarService) DaysUntil(eventID string) (int, error) {
	e, ok := s.find(eventID)
	if !ok {
		return 0, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	return domain.DaysBetween(s.now(), e.StartDate), nil
}

func (s *calendarService) CountdownLabel(eventID string) (string, error) {
	days, err := s.DaysUntil(eventID)
	if err != nil {
		return "", err
	}
	return countdownLabel(days), nil
}

func countdownLabel(days int) string {
	switch {
	case days < 0:
		return "Past"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days < 7:
		return fmt.Sprintf("In %d days", days)
	case days < 14:
		return "Next week"
	case days < 30:
		return fmt.Sprintf("In %d weeks", days/7)
	default:
		return fmt.Sprintf("In %d months", days/30)
	}
}

func (s *calendarService) find(eventID string) (domain.Event, bool) {
	for _, e := range s.events {
		if e.ID == eventID {
			return e, true
		}
	}
	return domain.Event{}, false
}

// store replaces the cached copy of e, appending it when the cache lacks it.
func (s *calendarService) store(e domain.Event) {
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e.Clone()
			return
		}
	}
	s.events = append(s.events, e.Clone())
}

func byStart(events []domain.Event) []domain.Event {
	slices.SortStableFunc(events, func(a, b domain.Event) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return events
}
