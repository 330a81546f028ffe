package domain

import (
	"context"
	"time"
)

// Conventional event categories. Category is free text; these drive display lookups.
const (
	CategoryCompetition = "Competition"
	CategoryMeeting     = "Meeting"
	CategoryConference  = "Conference"
	CategoryWorkshop    = "Workshop"
	CategorySocial      = "Social"
	CategoryService     = "Community Service"
	CategoryFundraiser  = "Fundraiser"
)

// Event represents a chapter calendar event.
type Event struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	Location            string    `json:"location"`
	Category            string    `json:"category"`
	IsCompetition       bool      `json:"is_competition"`
	RegisteredMemberIDs []string  `json:"registered_member_ids"`
	// MaxParticipants is nil when the event has no capacity limit.
	MaxParticipants *int   `json:"max_participants,omitempty"`
	Organizer       string `json:"organizer,omitempty"`
	Notes           string `json:"notes,omitempty"`
	RequiresRSVP    bool   `json:"requires_rsvp"`
}

// Validate checks the structural invariants of an event.
func (e Event) Validate() error {
	if e.EndDate.Before(e.StartDate) {
		return NewValidationError("end_date", "End date must not be before start date")
	}
	if e.MaxParticipants != nil && *e.MaxParticipants < 0 {
		return NewValidationError("max_participants", "Max participants must not be negative")
	}
	return nil
}

// Clone returns a copy of e that shares no slices or pointers with it.
func (e Event) Clone() Event {
	e.RegisteredMemberIDs = cloneStrings(e.RegisteredMemberIDs)
	if e.MaxParticipants != nil {
		limit := *e.MaxParticipants
		e.MaxParticipants = &limit
	}
	return e
}

// IsRegistered reports whether memberID holds a registration.
func (e Event) IsRegistered(memberID string) bool {
	return hasID(e.RegisteredMemberIDs, memberID)
}

// WithRegistration returns a copy of e with memberID registered. Registering twice
// leaves a single entry.
func (e Event) WithRegistration(memberID string) Event {
	out := e.Clone()
	out.RegisteredMemberIDs = withID(out.RegisteredMemberIDs, memberID)
	return out
}

// WithoutRegistration returns a copy of e with memberID's registration removed.
func (e Event) WithoutRegistration(memberID string) Event {
	out := e.Clone()
	out.RegisteredMemberIDs = withoutID(out.RegisteredMemberIDs, memberID)
	return out
}

// IsOngoing reports whether now falls between start and end, inclusive.
func (e Event) IsOngoing(now time.Time) bool {
	return !now.Before(e.StartDate) && !now.After(e.EndDate)
}

// IsUpcoming reports whether the event starts after now.
func (e Event) IsUpcoming(now time.Time) bool {
	return e.StartDate.After(now)
}

// IsPast reports whether the event ended before now.
func (e Event) IsPast(now time.Time) bool {
	return e.EndDate.Before(now)
}

// IsFull reports whether registrations reached MaxParticipants. Unlimited events are never full.
func (e Event) IsFull() bool {
	if e.MaxParticipants == nil {
		return false
	}
	return len(e.RegisteredMemberIDs) >= *e.MaxParticipants
}

// SpotsLeft returns the remaining capacity, or -1 for unlimited events.
func (e Event) SpotsLeft() int {
	if e.MaxParticipants == nil {
		return -1
	}
	return max(*e.MaxParticipants-len(e.RegisteredMemberIDs), 0)
}

func (e Event) DurationInHours() float64 {
	return e.EndDate.Sub(e.StartDate).Hours()
}

// EventRepository defines storage for calendar events.
type EventRepository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) error
}
