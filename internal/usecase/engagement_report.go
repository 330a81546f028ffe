package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chapterhub/internal/domain"
	"chapterhub/internal/services"

	"github.com/dustin/go-humanize"
)

type engagementReportUseCase struct {
	profile        domain.ProfileService
	calendar       domain.CalendarService
	news           domain.NewsService
	resources      domain.ResourceService
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEngagementReportUseCase(
	profile domain.ProfileService,
	calendar domain.CalendarService,
	news domain.NewsService,
	resources domain.ResourceService,
	timeout time.Duration,
) domain.EngagementReportUseCase {
	return &engagementReportUseCase{
		profile:        profile,
		calendar:       calendar,
		news:           news,
		resources:      resources,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// BuildReport reloads every service and summarises the current member's view
// of events, news and resources.
func (uc *engagementReportUseCase) BuildReport(ctx context.Context) (*domain.EngagementReport, error) {
	if uc.contextTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.contextTimeout)
		defer cancel()
	}

	member, err := uc.profile.LoadCurrentMember(ctx)
	if err != nil {
		return nil, fmt.Errorf("load current member: %w", err)
	}
	if _, err := uc.calendar.Load(ctx); err != nil {
		return nil, err
	}
	if _, err := uc.news.Load(ctx); err != nil {
		return nil, err
	}
	if _, err := uc.resources.Load(ctx); err != nil {
		return nil, err
	}

	now := uc.now()
	return &domain.EngagementReport{
		GeneratedAt: now,
		Member: domain.MemberSummary{
			ID:         member.ID,
			Name:       member.Name,
			Chapter:    member.Chapter,
			Role:       member.Role,
			GradeLevel: member.GradeLevel,
			MemberFor:  strings.TrimSpace(humanize.RelTime(member.JoinDate, now, "", "")),
		},
		Events:    uc.eventsSummary(member.ID, now),
		News:      uc.newsSummary(),
		Resources: uc.resourcesSummary(),
	}, nil
}

func (uc *engagementReportUseCase) eventsSummary(memberID string, now time.Time) domain.EventsSummary {
	upcoming := uc.calendar.ListUpcoming()
	summary := domain.EventsSummary{
		UpcomingCount: len(upcoming),
		Today:         []domain.EventSummary{},
		Registered:    []domain.EventSummary{},
	}
	for _, e := range uc.calendar.ListToday() {
		summary.Today = append(summary.Today, uc.eventSummary(e))
	}
	for _, e := range uc.calendar.RegisteredEvents(memberID) {
		if e.IsPast(now) {
			continue
		}
		summary.Registered = append(summary.Registered, uc.eventSummary(e))
	}
	if comps := uc.calendar.ListCompetitions(); len(comps) > 0 {
		next := uc.eventSummary(comps[0])
		summary.NextCompetition = &next
	}
	return summary
}

func (uc *engagementReportUseCase) eventSummary(e domain.Event) domain.EventSummary {
	countdown, _ := uc.calendar.CountdownLabel(e.ID) // e comes from the calendar cache
	s := domain.EventSummary{
		ID:        e.ID,
		Title:     e.Title,
		Category:  e.Category,
		StartDate: e.StartDate,
		Countdown: countdown,
		Color:     services.CategoryColor(e.Category),
		Icon:      services.CategoryIcon(e.Category),
	}
	if spots := e.SpotsLeft(); spots >= 0 {
		s.SpotsLeft = &spots
	}
	return s
}

func (uc *engagementReportUseCase) newsSummary() domain.NewsSummary {
	summary := domain.NewsSummary{
		Stats:       uc.news.EngagementStats(),
		PinnedCount: len(uc.news.Pinned()),
		Trending:    []string{},
	}
	for _, n := range uc.news.Trending() {
		summary.Trending = append(summary.Trending, n.Title)
	}
	if top, ok := uc.news.MostPopular(); ok {
		summary.MostPopular = top.Title
	}
	return summary
}

func (uc *engagementReportUseCase) resourcesSummary() domain.ResourcesSummary {
	summary := domain.ResourcesSummary{
		Stats:     uc.resources.UsageStats(),
		Popular:   []string{},
		Platforms: []domain.PlatformCount{},
	}
	for _, r := range uc.resources.Popular() {
		summary.Popular = append(summary.Popular, r.Title)
	}
	if top, ok := uc.resources.MostDownloaded(); ok {
		summary.MostDownloaded = top.Title
	}
	for _, g := range uc.resources.ByPlatform() {
		summary.Platforms = append(summary.Platforms, domain.PlatformCount{Platform: g.Platform, Count: len(g.Resources)})
	}
	return summary
}
