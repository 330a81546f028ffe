package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"chapterhub/internal/domain"
)

const (
	newsRecentWindow   = 7 * 24 * time.Hour
	newsTrendingWindow = 30 * 24 * time.Hour
	trendingMinLikes   = 5
	trendingMinViews   = 50
)

type newsService struct {
	newsRepo domain.NewsRepository
	logger   *slog.Logger
	now      func() time.Time
	items    []domain.NewsItem
}

// NewNewsService creates a NewsService backed by newsRepo.
func NewNewsService(newsRepo domain.NewsRepository, logger *slog.Logger) domain.NewsService {
	return &newsService{newsRepo: newsRepo, logger: orDiscard(logger), now: time.Now}
}

// Load fetches all news items: pinned first, then by priority, then newest.
func (s *newsService) Load(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	sortNews(items)
	s.items = items
	return s.All(), nil
}

func (s *newsService) All() []domain.NewsItem {
	return cloneAll(s.items, domain.NewsItem.Clone)
}

// ToggleLike likes the item for memberID, or removes the like if present.
func (s *newsService) ToggleLike(ctx context.Context, memberID, newsID string) (domain.NewsItem, error) {
	item, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("get news item: %w", err)
	}
	updated := item.WithLikeToggled(memberID)
	if err := s.newsRepo.Update(ctx, updated); err != nil {
		return domain.NewsItem{}, fmt.Errorf("update news item: %w", err)
	}
	s.store(updated)
	s.logger.Debug("news like toggled", "news_id", newsID, "member_id", memberID, "liked", updated.HasLiked(memberID))
	return updated.Clone(), nil
}

func (s *newsService) HasLiked(memberID, newsID string) bool {
	for _, n := range s.items {
		if n.ID == newsID {
			return n.HasLiked(memberID)
		}
	}
	return false
}

// IncrementViewCount adds one view. Callers invoke it once per article open.
func (s *newsService) IncrementViewCount(ctx context.Context, newsID string) (domain.NewsItem, error) {
	item, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return domain.NewsItem{}, fmt.Errorf("get news item: %w", err)
	}
	updated := item.WithView()
	if err := s.newsRepo.Update(ctx, updated); err != nil {
		return domain.NewsItem{}, fmt.Errorf("update news item: %w", err)
	}
	s.store(updated)
	return updated.Clone(), nil
}

func (s *newsService) Pinned() []domain.NewsItem {
	return filter(s.items, domain.NewsItem.Clone, func(n domain.NewsItem) bool { return n.IsPinned })
}

func (s *newsService) ByCategory(category string) []domain.NewsItem {
	return filter(s.items, domain.NewsItem.Clone, func(n domain.NewsItem) bool {
		return strings.EqualFold(n.Category, category)
	})
}

// Recent returns items published in the last seven days.
func (s *newsService) Recent() []domain.NewsItem {
	since := s.now().Add(-newsRecentWindow)
	return filter(s.items, domain.NewsItem.Clone, func(n domain.NewsItem) bool {
		return !n.PublishedDate.Before(since)
	})
}

// Trending returns items from the last 30 days with more than 5 likes or more
// than 50 views, highest score first.
func (s *newsService) Trending() []domain.NewsItem {
	since := s.now().Add(-newsTrendingWindow)
	out := filter(s.items, domain.NewsItem.Clone, func(n domain.NewsItem) bool {
		return !n.PublishedDate.Before(since) &&
			(n.LikeCount() > trendingMinLikes || n.ViewCount > trendingMinViews)
	})
	slices.SortStableFunc(out, func(a, b domain.NewsItem) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	return out
}

// Search matches query against title, content, summary, author and tags,
// ignoring case. A blank query returns every item.
func (s *newsService) Search(query string) []domain.NewsItem {
	m, ok := newMatcher(query)
	if !ok {
		return s.All()
	}
	return filter(s.items, domain.NewsItem.Clone, func(n domain.NewsItem) bool {
		return m.match(n.Title, n.Content, n.Summary, n.Author) || m.match(n.Tags...)
	})
}

func (s *newsService) AllTags() []string {
	var tags []string
	for _, n := range s.items {
		tags = append(tags, n.Tags...)
	}
	return sortedUnique(tags)
}

func (s *newsService) EngagementStats() domain.NewsStats {
	stats := domain.NewsStats{TotalArticles: len(s.items)}
	for _, n := range s.items {
		stats.TotalViews += n.ViewCount
		stats.TotalLikes += n.LikeCount()
	}
	stats.AverageViews = average(stats.TotalViews, stats.TotalArticles)
	stats.AverageLikes = average(stats.TotalLikes, stats.TotalArticles)
	return stats
}

// MostPopular returns the item with the highest score. The earliest item in
// sort order wins a tie.
func (s *newsService) MostPopular() (domain.NewsItem, bool) {
	if len(s.items) == 0 {
		return domain.NewsItem{}, false
	}
	best := s.items[0]
	for _, n := range s.items[1:] {
		if n.Score() > best.Score() {
			best = n
		}
	}
	return best.Clone(), true
}

func (s *newsService) store(n domain.NewsItem) {
	for i := range s.items {
		if s.items[i].ID == n.ID {
			s.items[i] = n.Clone()
			return
		}
	}
	s.items = append(s.items, n.Clone())
	sortNews(s.items)
}

func sortNews(items []domain.NewsItem) {
	slices.SortStableFunc(items, func(a, b domain.NewsItem) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return b.PublishedDate.Compare(a.PublishedDate)
	})
}
