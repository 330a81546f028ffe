package domain

import (
	"context"
	"time"
)

// EngagementReport is a point-in-time summary of the current member's chapter
// activity.
type EngagementReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Member      MemberSummary    `json:"member"`
	Events      EventsSummary    `json:"events"`
	News        NewsSummary      `json:"news"`
	Resources   ResourcesSummary `json:"resources"`
}

type MemberSummary struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Chapter    string     `json:"chapter"`
	Role       MemberRole `json:"role"`
	GradeLevel GradeLevel `json:"grade_level"`
	MemberFor  string     `json:"member_for"`
}

type EventSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	StartDate time.Time `json:"start_date"`
	Countdown string    `json:"countdown"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	SpotsLeft *int      `json:"spots_left,omitempty"`
}

type EventsSummary struct {
	UpcomingCount   int            `json:"upcoming_count"`
	Today           []EventSummary `json:"today"`
	Registered      []EventSummary `json:"registered"`
	NextCompetition *EventSummary  `json:"next_competition,omitempty"`
}

type NewsSummary struct {
	Stats       NewsStats `json:"stats"`
	PinnedCount int       `json:"pinned_count"`
	Trending    []string  `json:"trending"`
	MostPopular string    `json:"most_popular,omitempty"`
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type ResourcesSummary struct {
	Stats          ResourceStats   `json:"stats"`
	Popular        []string        `json:"popular"`
	MostDownloaded string          `json:"most_downloaded,omitempty"`
	Platforms      []PlatformCount `json:"platforms"`
}

// EngagementReportUseCase builds engagement reports.
type EngagementReportUseCase interface {
	BuildReport(ctx context.Context) (*EngagementReport, error)
}
