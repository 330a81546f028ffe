package domain

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
)

// NewsItem represents a chapter news article.
type NewsItem struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Summary          string    `json:"summary"`
	Author           string    `json:"author"`
	PublishedDate    time.Time `json:"published_date"`
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url,omitempty"`
	Tags             []string  `json:"tags"`
	IsPinned         bool      `json:"is_pinned"`
	ViewCount        int       `json:"view_count"`
	LikedByMemberIDs []string  `json:"liked_by_member_ids"`
	ExternalLink     string    `json:"external_link,omitempty"`
	// Priority is conventionally 1 (lowest) to 5 (highest).
	Priority int `json:"priority"`
}

// Clone returns a copy of n that shares no slices with it.
func (n NewsItem) Clone() NewsItem {
	n.Tags = cloneStrings(n.Tags)
	n.LikedByMemberIDs = cloneStrings(n.LikedByMemberIDs)
	return n
}

func (n NewsItem) LikeCount() int {
	return len(n.LikedByMemberIDs)
}

// HasLiked reports whether memberID likes the item.
func (n NewsItem) HasLiked(memberID string) bool {
	return hasID(n.LikedByMemberIDs, memberID)
}

// WithLikeToggled returns a copy of n with memberID's like flipped.
func (n NewsItem) WithLikeToggled(memberID string) NewsItem {
	out := n.Clone()
	if out.HasLiked(memberID) {
		out.LikedByMemberIDs = withoutID(out.LikedByMemberIDs, memberID)
	} else {
		out.LikedByMemberIDs = withID(out.LikedByMemberIDs, memberID)
	}
	return out
}

// WithView returns a copy of n with one more view.
func (n NewsItem) WithView() NewsItem {
	out := n.Clone()
	out.ViewCount++
	return out
}

// Score ranks popularity: a like weighs two views.
func (n NewsItem) Score() int {
	return n.LikeCount()*2 + n.ViewCount
}

// IsNew reports whether the item was published on now's calendar day.
func (n NewsItem) IsNew(now time.Time) bool {
	return SameDay(n.PublishedDate, now)
}

// TimeAgo describes the time elapsed since publishing, e.g. "3 hours ago".
func (n NewsItem) TimeAgo(now time.Time) string {
	return humanize.RelTime(n.PublishedDate, now, "ago", "from now")
}

// NewsRepository defines storage for news items.
type NewsRepository interface {
	List(ctx context.Context) ([]NewsItem, error)
	GetByID(ctx context.Context, id string) (NewsItem, error)
	Create(ctx context.Context, item NewsItem) (NewsItem, error)
	Update(ctx context.Context, item NewsItem) error
}
