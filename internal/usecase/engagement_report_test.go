package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"chapterhub/internal/domain"
	"chapterhub/internal/repository/memory"
	"chapterhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportUseCase(t *testing.T, fixture *memory.Fixture) domain.EngagementReportUseCase {
	t.Helper()
	store, err := memory.NewStore(memory.Options{Fixture: fixture})
	require.NoError(t, err)
	return NewEngagementReportUseCase(
		services.NewProfileService(store.Members(), nil),
		services.NewCalendarService(store.Events(), nil),
		services.NewNewsService(store.News(), nil),
		services.NewResourceService(store.Resources(), nil),
		time.Second,
	)
}

func TestEngagementReport_BuildReport(t *testing.T) {
	uc := newReportUseCase(t, nil)

	report, err := uc.BuildReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "member-1", report.Member.ID)
	assert.Equal(t, "Alex Johnson", report.Member.Name)
	assert.Equal(t, domain.RoleVicePresident, report.Member.Role)
	assert.Equal(t, "1 year", report.Member.MemberFor)

	assert.Equal(t, 6, report.Events.UpcomingCount)
	require.Len(t, report.Events.Registered, 1, "past registrations are left out")
	reg := report.Events.Registered[0]
	assert.Equal(t, "event-3", reg.ID)
	assert.Equal(t, "In 3 weeks", reg.Countdown)
	assert.Equal(t, services.CategoryColor(domain.CategoryCompetition), reg.Color)
	require.NotNil(t, reg.SpotsLeft)
	assert.Equal(t, 10, *reg.SpotsLeft)
	require.NotNil(t, report.Events.NextCompetition)
	assert.Equal(t, "event-6", report.Events.NextCompetition.ID)

	assert.Equal(t, domain.NewsStats{
		TotalArticles: 5, TotalViews: 500, TotalLikes: 10, AverageViews: 100, AverageLikes: 2,
	}, report.News.Stats)
	assert.Equal(t, 2, report.News.PinnedCount)
	assert.Equal(t, []string{
		"State Leadership Conference Registration Open",
		"New Competitive Event Guidelines Released",
	}, report.News.Trending)
	assert.Equal(t, "Summer Business Academy Recap", report.News.MostPopular)

	assert.Equal(t, 234, report.Resources.Stats.TotalDownloads)
	assert.Equal(t, "Competitive Events Guidelines", report.Resources.MostDownloaded)
	assert.Len(t, report.Resources.Popular, 4)
	assert.Equal(t, []domain.PlatformCount{
		{Platform: "Instagram", Count: 1},
		{Platform: "LinkedIn", Count: 1},
		{Platform: "YouTube", Count: 1},
	}, report.Resources.Platforms)

	_, err = json.Marshal(report)
	require.NoError(t, err)
}

func TestEngagementReport_NoMembers(t *testing.T) {
	uc := newReportUseCase(t, &memory.Fixture{})
	_, err := uc.BuildReport(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngagementReport_EmptyCollections(t *testing.T) {
	uc := newReportUseCase(t, &memory.Fixture{
		Members: []memory.MemberFixture{{ID: "solo", Name: "Solo Member", Joined: memory.Offset{Days: -3}}},
	})

	report, err := uc.BuildReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "solo", report.Member.ID)
	assert.Zero(t, report.Events.UpcomingCount)
	assert.Empty(t, report.Events.Today)
	assert.Nil(t, report.Events.NextCompetition)
	assert.Equal(t, domain.NewsStats{}, report.News.Stats)
	assert.Empty(t, report.News.MostPopular)
	assert.Equal(t, domain.ResourceStats{}, report.Resources.Stats)
	assert.Empty(t, report.Resources.Platforms)
}

func TestEngagementReport_HonoursCancellation(t *testing.T) {
	uc := newReportUseCase(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.BuildReport(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
