package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ResourceType classifies a resource.
type ResourceType string

const (
	ResourceDocument     ResourceType = "Document"
	ResourceVideo        ResourceType = "Video"
	ResourceLink         ResourceType = "Link"
	ResourceSocialMedia  ResourceType = "Social Media"
	ResourceGuide        ResourceType = "Guide"
	ResourceTemplate     ResourceType = "Template"
	ResourcePresentation ResourceType = "Presentation"
)

// SocialPlatform names a social network and the URL hosts that identify it.
type SocialPlatform struct {
	Name    string
	Domains []string
}

// SocialPlatforms is the fixed, ordered set of recognised platforms.
var SocialPlatforms = []SocialPlatform{
	{Name: "Facebook", Domains: []string{"facebook.com", "fb.com"}},
	{Name: "Twitter", Domains: []string{"twitter.com"}},
	{Name: "Instagram", Domains: []string{"instagram.com"}},
	{Name: "LinkedIn", Domains: []string{"linkedin.com"}},
	{Name: "YouTube", Domains: []string{"youtube.com", "youtu.be"}},
}

// Matches reports whether url contains one of p's domains, ignoring case.
func (p SocialPlatform) Matches(url string) bool {
	u := strings.ToLower(url)
	for _, d := range p.Domains {
		if strings.Contains(u, d) {
			return true
		}
	}
	return false
}

// Resource represents a downloadable or linkable member resource.
type Resource struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         ResourceType `json:"type"`
	Category     string       `json:"category"`
	URL          string       `json:"url"`
	FileFormat   string       `json:"file_format,omitempty"`
	FileSize     *int64       `json:"file_size,omitempty"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	DateAdded    time.Time    `json:"date_added"`
	LastUpdated  *time.Time   `json:"last_updated,omitempty"`
	Tags         []string     `json:"tags"`
	IsFeatured   bool         `json:"is_featured"`
	// DownloadCount only grows.
	DownloadCount      int    `json:"download_count"`
	IsOfflineAvailable bool   `json:"is_offline_available"`
	Author             string `json:"author,omitempty"`
	// EstimatedTime is in minutes.
	EstimatedTime *int `json:"estimated_time,omitempty"`
}

// Clone returns a copy of r that shares no slices or pointers with it.
func (r Resource) Clone() Resource {
	r.Tags = cloneStrings(r.Tags)
	if r.FileSize != nil {
		size := *r.FileSize
		r.FileSize = &size
	}
	if r.LastUpdated != nil {
		t := *r.LastUpdated
		r.LastUpdated = &t
	}
	if r.EstimatedTime != nil {
		mins := *r.EstimatedTime
		r.EstimatedTime = &mins
	}
	return r
}

// WithDownload returns a copy of r with one more download.
func (r Resource) WithDownload() Resource {
	out := r.Clone()
	out.DownloadCount++
	return out
}

// FileSizeFormatted renders FileSize in binary units, e.g. "2.5 MiB". It is empty
// when the size is unknown.
func (r Resource) FileSizeFormatted() string {
	if r.FileSize == nil || *r.FileSize < 0 {
		return ""
	}
	return humanize.IBytes(uint64(*r.FileSize))
}

// IsSocialMedia reports whether r is tagged as social media or links to a known platform.
func (r Resource) IsSocialMedia() bool {
	if r.Type == ResourceSocialMedia {
		return true
	}
	_, ok := r.Platform()
	return ok
}

// Platform returns the social platform r's URL points at.
func (r Resource) Platform() (string, bool) {
	for _, p := range SocialPlatforms {
		if p.Matches(r.URL) {
			return p.Name, true
		}
	}
	return "", false
}

// EstimatedTimeFormatted renders EstimatedTime as "45 min", "2h" or "1h 30m".
func (r Resource) EstimatedTimeFormatted() string {
	if r.EstimatedTime == nil {
		return ""
	}
	mins := *r.EstimatedTime
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	h, m := mins/60, mins%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// ResourceRepository defines storage for resources.
type ResourceRepository interface {
	List(ctx context.Context) ([]Resource, error)
	GetByID(ctx context.Context, id string) (Resource, error)
	Create(ctx context.Context, resource Resource) (Resource, error)
	Update(ctx context.Context, resource Resource) error
}
