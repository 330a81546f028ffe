package services

import (
	"context"
	"testing"

	"chapterhub/internal/domain"
	"chapterhub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceService_LoadSortOrder(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, nil))
	assert.Equal(t,
		[]string{"resource-4", "resource-1", "resource-5", "resource-2", "resource-6", "resource-3"},
		resourceIDs(svc.All()))
}

func TestResourceService_Queries(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, nil))

	tests := []struct {
		name string
		got  []domain.Resource
		want []string
	}{
		{"featured", svc.Featured(), []string{"resource-4", "resource-1"}},
		{"by category", svc.ByCategory("competition prep"), []string{"resource-1", "resource-6"}},
		{"by type", svc.ByType(domain.ResourceTemplate), []string{"resource-6"}},
		{"social media", svc.SocialMedia(), []string{"resource-5", "resource-2", "resource-3"}},
		{"offline", svc.OfflineAvailable(), []string{"resource-4", "resource-1", "resource-6"}},
		{"recent", svc.Recent(), []string{"resource-4", "resource-5", "resource-2"}},
		{"popular", svc.Popular(), []string{"resource-1", "resource-2", "resource-4", "resource-6"}},
		{"competition prep", svc.CompetitionPrep(), []string{"resource-1", "resource-6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceIDs(tt.got))
		})
	}

	assert.Equal(t, []string{"Community", "Competition Prep", "Leadership", "Skill Building"}, svc.AllCategories())
	assert.Contains(t, svc.AllTags(), "Rubrics")

	top, ok := svc.MostDownloaded()
	require.True(t, ok)
	assert.Equal(t, "resource-1", top.ID)
}

func TestResourceService_ByPlatform(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, nil))

	groups := svc.ByPlatform()
	require.Len(t, groups, 3)
	assert.Equal(t, "Instagram", groups[0].Platform)
	assert.Equal(t, []string{"resource-3"}, resourceIDs(groups[0].Resources))
	assert.Equal(t, "LinkedIn", groups[1].Platform)
	assert.Equal(t, []string{"resource-5"}, resourceIDs(groups[1].Resources))
	assert.Equal(t, "YouTube", groups[2].Platform)
	assert.Equal(t, []string{"resource-2"}, resourceIDs(groups[2].Resources))
}

func TestResourceService_Search(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, nil))
	all := resourceIDs(svc.All())

	tests := []struct {
		query string
		want  []string
	}{
		{"", all},
		{"\t", all},
		{"PRIYA", []string{"resource-4"}},
		{"video", []string{"resource-2"}},
		{"skill building", []string{"resource-2"}},
		{"templates", []string{"resource-4", "resource-6"}},
		{"social media", []string{"resource-3"}},
		{"nothing matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, resourceIDs(svc.Search(tt.query)))
		})
	}
}

func TestResourceService_AccessResource(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	svc := newLoadedResources(t, store)
	other := newLoadedResources(t, store)

	r, err := svc.AccessResource(ctx, "resource-3")
	require.NoError(t, err)
	assert.Equal(t, 9, r.DownloadCount)

	stored, err := store.Resources().GetByID(ctx, "resource-3")
	require.NoError(t, err)
	assert.Equal(t, 9, stored.DownloadCount)
	assert.Equal(t, 235, svc.UsageStats().TotalDownloads)
	assert.Equal(t, 234, other.UsageStats().TotalDownloads, "other services keep their cache until reloaded")

	_, err = svc.AccessResource(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceService_UsageStats(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, nil))
	assert.Equal(t, domain.ResourceStats{
		TotalResources:   6,
		TotalDownloads:   234,
		AverageDownloads: 39,
		OfflineAvailable: 3,
		Featured:         2,
	}, svc.UsageStats())
}

func TestResourceService_Empty(t *testing.T) {
	svc := newLoadedResources(t, newTestStore(t, &memory.Fixture{}))

	assert.Equal(t, domain.ResourceStats{}, svc.UsageStats())
	_, ok := svc.MostDownloaded()
	assert.False(t, ok)
	assert.Empty(t, svc.ByPlatform())
	assert.Empty(t, svc.Search("  "))
	assert.Empty(t, svc.AllCategories())
}
