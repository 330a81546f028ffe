package memory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"chapterhub/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultFixture []byte

// Offset places a fixture timestamp relative to the seeding time: Days and
// Hours are added first, then At ("15:04") pins the clock time on that day.
type Offset struct {
	Days  int    `yaml:"days"`
	Hours int    `yaml:"hours"`
	At    string `yaml:"at"`
}

func (o Offset) resolve(now time.Time) time.Time {
	t := now.AddDate(0, 0, o.Days).Add(time.Duration(o.Hours) * time.Hour)
	if o.At == "" {
		return t
	}
	clock, _ := time.Parse("15:04", o.At) // checked by Validate
	y, m, d := t.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, t.Location())
}

func (o Offset) validate() error {
	if o.At == "" {
		return nil
	}
	if _, err := time.Parse("15:04", o.At); err != nil {
		return fmt.Errorf("offset at %q: want HH:MM", o.At)
	}
	return nil
}

type MemberFixture struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Email          string   `yaml:"email"`
	Phone          string   `yaml:"phone"`
	Chapter        string   `yaml:"chapter"`
	Role           string   `yaml:"role"`
	GradeLevel     string   `yaml:"grade_level"`
	Interests      []string `yaml:"interests"`
	Joined         Offset   `yaml:"joined"`
	ProfilePicture string   `yaml:"profile_picture"`
}

type EventFixture struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Start           Offset   `yaml:"start"`
	End             Offset   `yaml:"end"`
	Location        string   `yaml:"location"`
	Category        string   `yaml:"category"`
	IsCompetition   bool     `yaml:"is_competition"`
	Registered      []string `yaml:"registered"`
	MaxParticipants *int     `yaml:"max_participants"`
	Organizer       string   `yaml:"organizer"`
	Notes           string   `yaml:"notes"`
	RequiresRSVP    bool     `yaml:"requires_rsvp"`
}

type NewsFixture struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Content      string   `yaml:"content"`
	Summary      string   `yaml:"summary"`
	Author       string   `yaml:"author"`
	Published    Offset   `yaml:"published"`
	Category     string   `yaml:"category"`
	ImageURL     string   `yaml:"image_url"`
	Tags         []string `yaml:"tags"`
	IsPinned     bool     `yaml:"is_pinned"`
	ViewCount    int      `yaml:"view_count"`
	LikedBy      []string `yaml:"liked_by"`
	ExternalLink string   `yaml:"external_link"`
	Priority     int      `yaml:"priority"`
}

type ResourceFixture struct {
	ID                 string   `yaml:"id"`
	Title              string   `yaml:"title"`
	Description        string   `yaml:"description"`
	Type               string   `yaml:"type"`
	Category           string   `yaml:"category"`
	URL                string   `yaml:"url"`
	FileFormat         string   `yaml:"file_format"`
	FileSize           *int64   `yaml:"file_size"`
	ThumbnailURL       string   `yaml:"thumbnail_url"`
	Added              Offset   `yaml:"added"`
	Updated            *Offset  `yaml:"updated"`
	Tags               []string `yaml:"tags"`
	IsFeatured         bool     `yaml:"is_featured"`
	DownloadCount      int      `yaml:"download_count"`
	IsOfflineAvailable bool     `yaml:"is_offline_available"`
	Author             string   `yaml:"author"`
	EstimatedTime      *int     `yaml:"estimated_time"`
}

// Fixture is the seed data set, with dates relative to seeding time.
type Fixture struct {
	Members   []MemberFixture   `yaml:"members"`
	Events    []EventFixture    `yaml:"events"`
	News      []NewsFixture     `yaml:"news"`
	Resources []ResourceFixture `yaml:"resources"`
}

// Seed is a fixture resolved into domain records.
type Seed struct {
	Members   []domain.Member
	Events    []domain.Event
	News      []domain.NewsItem
	Resources []domain.Resource
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// LoadFixtureFile reads and decodes the fixture at path.
func LoadFixtureFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// DefaultFixture returns the embedded sample data.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// Validate checks that every record has an ID unique within its collection and
// that every offset parses.
func (f *Fixture) Validate() error {
	var errs []error
	collect := func(kind string, ids []string) {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if id == "" {
				errs = append(errs, fmt.Errorf("%s: missing id", kind))
				continue
			}
			if _, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%s %s: %w", kind, id, domain.ErrDuplicateID))
			}
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(f.Members))
	for _, m := range f.Members {
		ids = append(ids, m.ID)
		errs = append(errs, m.Joined.validate())
	}
	collect("member", ids)

	ids = ids[:0]
	for _, e := range f.Events {
		ids = append(ids, e.ID)
		errs = append(errs, e.Start.validate(), e.End.validate())
	}
	collect("event", ids)

	ids = ids[:0]
	for _, n := range f.News {
		ids = append(ids, n.ID)
		errs = append(errs, n.Published.validate())
	}
	collect("news item", ids)

	ids = ids[:0]
	for _, r := range f.Resources {
		ids = append(ids, r.ID)
		errs = append(errs, r.Added.validate())
		if r.Updated != nil {
			errs = append(errs, r.Updated.validate())
		}
	}
	collect("resource", ids)

	if err := errors.Join(errs...); err != nil {
		return err
	}

	now := time.Now()
	for _, e := range f.Materialize(now).Events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event %s: %w", e.ID, err)
		}
	}
	return nil
}

// Materialize resolves the fixture against now.
func (f *Fixture) Materialize(now time.Time) Seed {
	var s Seed
	for _, m := range f.Members {
		s.Members = append(s.Members, domain.Member{
			ID:             m.ID,
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			Chapter:        m.Chapter,
			Role:           domain.MemberRole(m.Role),
			GradeLevel:     domain.GradeLevel(m.GradeLevel),
			Interests:      cloneOrEmpty(m.Interests),
			JoinDate:       m.Joined.resolve(now),
			ProfilePicture: m.ProfilePicture,
		})
	}
	for _, e := range f.Events {
		ev := domain.Event{
			ID:                  e.ID,
			Title:               e.Title,
			Description:         e.Description,
			StartDate:           e.Start.resolve(now),
			EndDate:             e.End.resolve(now),
			Location:            e.Location,
			Category:            e.Category,
			IsCompetition:       e.IsCompetition,
			RegisteredMemberIDs: cloneOrEmpty(e.Registered),
			MaxParticipants:     e.MaxParticipants,
			Organizer:           e.Organizer,
			Notes:               e.Notes,
			RequiresRSVP:        e.RequiresRSVP,
		}
		s.Events = append(s.Events, ev.Clone())
	}
	for _, n := range f.News {
		s.News = append(s.News, domain.NewsItem{
			ID:               n.ID,
			Title:            n.Title,
			Content:          n.Content,
			Summary:          n.Summary,
			Author:           n.Author,
			PublishedDate:    n.Published.resolve(now),
			Category:         n.Category,
			ImageURL:         n.ImageURL,
			Tags:             cloneOrEmpty(n.Tags),
			IsPinned:         n.IsPinned,
			ViewCount:        n.ViewCount,
			LikedByMemberIDs: cloneOrEmpty(n.LikedBy),
			ExternalLink:     n.ExternalLink,
			Priority:         n.Priority,
		})
	}
	for _, r := range f.Resources {
		res := domain.Resource{
			ID:                 r.ID,
			Title:              r.Title,
			Description:        r.Description,
			Type:               domain.ResourceType(r.Type),
			Category:           r.Category,
			URL:                r.URL,
			FileFormat:         r.FileFormat,
			FileSize:           r.FileSize,
			ThumbnailURL:       r.ThumbnailURL,
			DateAdded:          r.Added.resolve(now),
			Tags:               cloneOrEmpty(r.Tags),
			IsFeatured:         r.IsFeatured,
			DownloadCount:      r.DownloadCount,
			IsOfflineAvailable: r.IsOfflineAvailable,
			Author:             r.Author,
			EstimatedTime:      r.EstimatedTime,
		}
		if r.Updated != nil {
			t := r.Updated.resolve(now)
			res.LastUpdated = &t
		}
		s.Resources = append(s.Resources, res.Clone())
	}
	return s
}

func cloneOrEmpty(s []string) []string {
	return append([]string{}, s...)
}
