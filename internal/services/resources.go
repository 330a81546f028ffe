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
	resourceRecentWindow = 30 * 24 * time.Hour
	popularMinDownloads  = 10
	competitionKeyword   = "competition"
)

type resourceService struct {
	resourceRepo domain.ResourceRepository
	logger       *slog.Logger
	now          func() time.Time
	resources    []domain.Resource
}

// NewResourceService creates a ResourceService backed by resourceRepo.
func NewResourceService(resourceRepo domain.ResourceRepository, logger *slog.Logger) domain.ResourceService {
	return &resourceService{resourceRepo: resourceRepo, logger: orDiscard(logger), now: time.Now}
}

// Load fetches all resources: featured first, then most recently added.
func (s *resourceService) Load(ctx context.Context) ([]domain.Resource, error) {
	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	sortResources(resources)
	s.resources = resources
	return s.All(), nil
}

func (s *resourceService) All() []domain.Resource {
	return cloneAll(s.resources, domain.Resource.Clone)
}

// AccessResource records one download of the resource.
func (s *resourceService) AccessResource(ctx context.Context, resourceID string) (domain.Resource, error) {
	r, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("get resource: %w", err)
	}
	updated := r.WithDownload()
	if err := s.resourceRepo.Update(ctx, updated); err != nil {
		return domain.Resource{}, fmt.Errorf("update resource: %w", err)
	}
	s.store(updated)
	s.logger.Debug("resource accessed", "resource_id", resourceID, "downloads", updated.DownloadCount)
	return updated.Clone(), nil
}

func (s *resourceService) Featured() []domain.Resource {
	return s.where(func(r domain.Resource) bool { return r.IsFeatured })
}

func (s *resourceService) ByCategory(category string) []domain.Resource {
	return s.where(func(r domain.Resource) bool { return strings.EqualFold(r.Category, category) })
}

func (s *resourceService) ByType(t domain.ResourceType) []domain.Resource {
	return s.where(func(r domain.Resource) bool { return r.Type == t })
}

func (s *resourceService) SocialMedia() []domain.Resource {
	return s.where(domain.Resource.IsSocialMedia)
}

func (s *resourceService) OfflineAvailable() []domain.Resource {
	return s.where(func(r domain.Resource) bool { return r.IsOfflineAvailable })
}

// Recent returns resources added in the last 30 days.
func (s *resourceService) Recent() []domain.Resource {
	since := s.now().Add(-resourceRecentWindow)
	return s.where(func(r domain.Resource) bool { return !r.DateAdded.Before(since) })
}

// Popular returns resources with more than 10 downloads, most downloaded first.
func (s *resourceService) Popular() []domain.Resource {
	out := s.where(func(r domain.Resource) bool { return r.DownloadCount > popularMinDownloads })
	slices.SortStableFunc(out, func(a, b domain.Resource) int {
		return cmp.Compare(b.DownloadCount, a.DownloadCount)
	})
	return out
}

// Search matches query against title, description, author, tags, category and
// type, ignoring case. A blank query returns every resource.
func (s *resourceService) Search(query string) []domain.Resource {
	m, ok := newMatcher(query)
	if !ok {
		return s.All()
	}
	return s.where(func(r domain.Resource) bool {
		return m.match(r.Title, r.Description, r.Author, r.Category, string(r.Type)) || m.match(r.Tags...)
	})
}

func (s *resourceService) AllTags() []string {
	var tags []string
	for _, r := range s.resources {
		tags = append(tags, r.Tags...)
	}
	return sortedUnique(tags)
}

func (s *resourceService) AllCategories() []string {
	categories := make([]string, 0, len(s.resources))
	for _, r := range s.resources {
		categories = append(categories, r.Category)
	}
	return sortedUnique(categories)
}

func (s *resourceService) UsageStats() domain.ResourceStats {
	stats := domain.ResourceStats{TotalResources: len(s.resources)}
	for _, r := range s.resources {
		stats.TotalDownloads += r.DownloadCount
		if r.IsOfflineAvailable {
			stats.OfflineAvailable++
		}
		if r.IsFeatured {
			stats.Featured++
		}
	}
	stats.AverageDownloads = average(stats.TotalDownloads, stats.TotalResources)
	return stats
}

// MostDownloaded returns the resource with the most downloads. The earliest in
// sort order wins a tie.
func (s *resourceService) MostDownloaded() (domain.Resource, bool) {
	if len(s.resources) == 0 {
		return domain.Resource{}, false
	}
	best := s.resources[0]
	for _, r := range s.resources[1:] {
		if r.DownloadCount > best.DownloadCount {
			best = r
		}
	}
	return best.Clone(), true
}

// CompetitionPrep returns resources whose category or any tag mentions
// competition.
func (s *resourceService) CompetitionPrep() []domain.Resource {
	return s.where(func(r domain.Resource) bool {
		if containsFold(r.Category, competitionKeyword) {
			return true
		}
		return slices.ContainsFunc(r.Tags, func(tag string) bool {
			return containsFold(tag, competitionKeyword)
		})
	})
}

// ByPlatform groups social-media resources by platform in the order of
// domain.SocialPlatforms. Platforms without resources are left out.
func (s *resourceService) ByPlatform() []domain.PlatformGroup {
	social := s.SocialMedia()
	groups := []domain.PlatformGroup{}
	for _, p := range domain.SocialPlatforms {
		var matched []domain.Resource
		for _, r := range social {
			if p.Matches(r.URL) {
				matched = append(matched, r.Clone())
			}
		}
		if len(matched) > 0 {
			groups = append(groups, domain.PlatformGroup{Platform: p.Name, Resources: matched})
		}
	}
	return groups
}

func (s *resourceService) where(keep func(domain.Resource) bool) []domain.Resource {
	return filter(s.resources, domain.Resource.Clone, keep)
}

func (s *resourceService) store(r domain.Resource) {
	for i := range s.resources {
		if s.resources[i].ID == r.ID {
			s.resources[i] = r.Clone()
			return
		}
	}
	s.resources = append(s.resources, r.Clone())
	sortResources(s.resources)
}

func sortResources(resources []domain.Resource) {
	slices.SortStableFunc(resources, func(a, b domain.Resource) int {
		if a.IsFeatured != b.IsFeatured {
			if a.IsFeatured {
				return -1
			}
			return 1
		}
		return b.DateAdded.Compare(a.DateAdded)
	})
}
