package domain

import "context"

// ProfileService manages the implicit current member's profile.
type ProfileService interface {
	// LoadCurrentMember fetches the first stored member and caches it.
	LoadCurrentMember(ctx context.Context) (Member, error)
	CurrentMember() (Member, bool)
	// UpdateProfile validates changes and writes them through. On a
	// *ValidationError nothing is stored.
	UpdateProfile(ctx context.Context, changes ProfileChanges) (Member, error)
}

// CalendarService lists events and manages registrations.
type CalendarService interface {
	Load(ctx context.Context) ([]Event, error)
	ListUpcoming() []Event
	ListToday() []Event
	ListByCategory(category string) []Event
	ListCompetitions() []Event
	RegisteredEvents(memberID string) []Event
	Register(ctx context.Context, memberID, eventID string) (Event, error)
	Unregister(ctx context.Context, memberID, eventID string) (Event, error)
	IsRegistered(memberID, eventID string) bool
	DaysUntil(eventID string) (int, error)
	CountdownLabel(eventID string) (string, error)
}

// NewsService lists news and tracks likes and views.
type NewsService interface {
	Load(ctx context.Context) ([]NewsItem, error)
	All() []NewsItem
	ToggleLike(ctx context.Context, memberID, newsID string) (NewsItem, error)
	HasLiked(memberID, newsID string) bool
	IncrementViewCount(ctx context.Context, newsID string) (NewsItem, error)
	Pinned() []NewsItem
	ByCategory(category string) []NewsItem
	Recent() []NewsItem
	Trending() []NewsItem
	Search(query string) []NewsItem
	AllTags() []string
	EngagementStats() NewsStats
	MostPopular() (NewsItem, bool)
}

// ResourceService lists resources and tracks downloads.
type ResourceService interface {
	Load(ctx context.Context) ([]Resource, error)
	All() []Resource
	AccessResource(ctx context.Context, resourceID string) (Resource, error)
	Featured() []Resource
	ByCategory(category string) []Resource
	ByType(t ResourceType) []Resource
	SocialMedia() []Resource
	OfflineAvailable() []Resource
	Recent() []Resource
	Popular() []Resource
	Search(query string) []Resource
	AllTags() []string
	AllCategories() []string
	UsageStats() ResourceStats
	MostDownloaded() (Resource, bool)
	CompetitionPrep() []Resource
	ByPlatform() []PlatformGroup
}

// NewsStats summarises engagement across all news items.
type NewsStats struct {
	TotalArticles int `json:"total_articles"`
	TotalViews    int `json:"total_views"`
	TotalLikes    int `json:"total_likes"`
	AverageViews  int `json:"average_views"`
	AverageLikes  int `json:"average_likes"`
}

// ResourceStats summarises usage across all resources.
type ResourceStats struct {
	TotalResources   int `json:"total_resources"`
	TotalDownloads   int `json:"total_downloads"`
	AverageDownloads int `json:"average_downloads"`
	OfflineAvailable int `json:"offline_available"`
	Featured         int `json:"featured"`
}

// PlatformGroup is the social-media resources hosted on one platform.
type PlatformGroup struct {
	Platform  string     `json:"platform"`
	Resources []Resource `json:"resources"`
}
