package services

import (
	"context"
	"testing"

	"chapterhub/internal/domain"
	"chapterhub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_LoadSortOrder(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, nil))
	assert.Equal(t, []string{"news-1", "news-4", "news-2", "news-3", "news-5"}, newsIDs(svc.All()))
}

func TestNewsService_PinnedBeatsPriority(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, &memory.Fixture{
		News: []memory.NewsFixture{
			{ID: "fresh", Priority: 5, Published: memory.Offset{Hours: -1}},
			{ID: "pinned", IsPinned: true, Priority: 1, Published: memory.Offset{Days: -60}},
			{ID: "tie-old", Priority: 3, Published: memory.Offset{Days: -3}},
			{ID: "tie-new", Priority: 3, Published: memory.Offset{Days: -1}},
		},
	}))
	assert.Equal(t, []string{"pinned", "fresh", "tie-new", "tie-old"}, newsIDs(svc.All()))
}

func TestNewsService_Queries(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, nil))

	assert.Equal(t, []string{"news-1", "news-4"}, newsIDs(svc.Pinned()))
	assert.Equal(t, []string{"news-4", "news-2"}, newsIDs(svc.ByCategory("chapter news")))
	assert.Equal(t, []string{"news-1", "news-4", "news-2"}, newsIDs(svc.Recent()))
	assert.Equal(t, []string{"news-1", "news-3"}, newsIDs(svc.Trending()))
	assert.Equal(t, []string{
		"Awards", "Community Service", "Competition", "Deadlines", "Elections",
		"Guidelines", "Leadership", "Networking", "SLC",
	}, svc.AllTags())

	popular, ok := svc.MostPopular()
	require.True(t, ok)
	assert.Equal(t, "news-5", popular.ID)
}

func TestNewsService_Search(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, nil))

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"news-1", "news-4", "news-2", "news-3", "news-5"}},
		{"   ", []string{"news-1", "news-4", "news-2", "news-3", "news-5"}},
		{"GOLD", []string{"news-2"}},
		{"competition", []string{"news-1", "news-3"}},
		{"alex johnson", []string{"news-2"}},
		{"rubrics", []string{"news-3"}},
		{"networking", []string{"news-5"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, newsIDs(svc.Search(tt.query)))
		})
	}
}

func TestNewsService_ToggleLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	svc := newLoadedNews(t, store)

	before, err := store.News().GetByID(ctx, "news-4")
	require.NoError(t, err)

	liked, err := svc.ToggleLike(ctx, "member-1", "news-4")
	require.NoError(t, err)
	assert.True(t, liked.HasLiked("member-1"))
	assert.True(t, svc.HasLiked("member-1", "news-4"))
	assert.Equal(t, before.LikeCount()+1, liked.LikeCount())

	unliked, err := svc.ToggleLike(ctx, "member-1", "news-4")
	require.NoError(t, err)
	assert.False(t, svc.HasLiked("member-1", "news-4"))
	assert.Equal(t, before.LikedByMemberIDs, unliked.LikedByMemberIDs)

	stored, err := store.News().GetByID(ctx, "news-4")
	require.NoError(t, err)
	assert.Equal(t, before.LikeCount(), stored.LikeCount())
}

func TestNewsService_IncrementViewCount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	svc := newLoadedNews(t, store)

	const n = 7
	for i := 0; i < n; i++ {
		_, err := svc.IncrementViewCount(ctx, "news-3")
		require.NoError(t, err)
	}
	stored, err := store.News().GetByID(ctx, "news-3")
	require.NoError(t, err)
	assert.Equal(t, 87+n, stored.ViewCount)
	assert.Equal(t, 500+n, svc.EngagementStats().TotalViews)

	_, err = svc.IncrementViewCount(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsService_EngagementStats(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, nil))
	assert.Equal(t, domain.NewsStats{
		TotalArticles: 5,
		TotalViews:    500,
		TotalLikes:    10,
		AverageViews:  100,
		AverageLikes:  2,
	}, svc.EngagementStats())
}

func TestNewsService_Empty(t *testing.T) {
	svc := newLoadedNews(t, newTestStore(t, &memory.Fixture{}))

	assert.Equal(t, domain.NewsStats{}, svc.EngagementStats())
	_, ok := svc.MostPopular()
	assert.False(t, ok)
	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.AllTags())
}
