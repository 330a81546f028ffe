// Package memory implements the member-engagement repositories in process
// memory. Nothing outlives the process.
package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"chapterhub/internal/domain"
)

// Compile-time checks that the collections satisfy the domain repositories.
var (
	_ domain.MemberRepository   = (*collection[domain.Member])(nil)
	_ domain.EventRepository    = (*collection[domain.Event])(nil)
	_ domain.NewsRepository     = (*collection[domain.NewsItem])(nil)
	_ domain.ResourceRepository = (*collection[domain.Resource])(nil)
)

// Options configures a Store.
type Options struct {
	// Latency is waited out by every repository operation.
	Latency time.Duration
	// Fixture seeds the store. Nil means the embedded default fixture.
	Fixture *Fixture
	// Now anchors the fixture's relative dates. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Store owns the four engagement collections. Build one per process and hand
// it to every service so they all observe the same state.
type Store struct {
	fixture *Fixture
	now     func() time.Time
	logger  *slog.Logger
	seeded  sync.Once

	members   *collection[domain.Member]
	events    *collection[domain.Event]
	news      *collection[domain.NewsItem]
	resources *collection[domain.Resource]
}

// NewStore validates the fixture and returns an unseeded store. Seeding happens
// once, on the first repository call.
func NewStore(opts Options) (*Store, error) {
	fixture := opts.Fixture
	if fixture == nil {
		var err error
		if fixture, err = DefaultFixture(); err != nil {
			return nil, err
		}
	}
	if err := fixture.Validate(); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Store{fixture: fixture, now: opts.Now, logger: opts.Logger}
	s.members = newCollection(entity[domain.Member]{
		kind:   "member",
		id:     func(m domain.Member) string { return m.ID },
		withID: func(m domain.Member, id string) domain.Member { m.ID = id; return m },
		clone:  domain.Member.Clone,
	}, opts.Latency, s.ensureSeeded, opts.Logger)
	s.events = newCollection(entity[domain.Event]{
		kind:   "event",
		id:     func(e domain.Event) string { return e.ID },
		withID: func(e domain.Event, id string) domain.Event { e.ID = id; return e },
		clone:  domain.Event.Clone,
		check:  domain.Event.Validate,
	}, opts.Latency, s.ensureSeeded, opts.Logger)
	s.news = newCollection(entity[domain.NewsItem]{
		kind:   "news item",
		id:     func(n domain.NewsItem) string { return n.ID },
		withID: func(n domain.NewsItem, id string) domain.NewsItem { n.ID = id; return n },
		clone:  domain.NewsItem.Clone,
	}, opts.Latency, s.ensureSeeded, opts.Logger)
	s.resources = newCollection(entity[domain.Resource]{
		kind:   "resource",
		id:     func(r domain.Resource) string { return r.ID },
		withID: func(r domain.Resource, id string) domain.Resource { r.ID = id; return r },
		clone:  domain.Resource.Clone,
	}, opts.Latency, s.ensureSeeded, opts.Logger)
	return s, nil
}

func (s *Store) Members() domain.MemberRepository { return s.members }
func (s *Store) Events() domain.EventRepository { return s.events }
func (s *Store) News() domain.NewsRepository { return s.news }
func (s *Store) Resources() domain.ResourceRepository { return s.resources }

func (s *Store) ensureSeeded() {
	s.seeded.Do(func() {
		seed := s.fixture.Materialize(s.now())
		s.members.items = seed.Members
		s.events.items = seed.Events
		s.news.items = seed.News
		s.resources.items = seed.Resources
		s.logger.Debug("memory: store seeded",
			"members", len(seed.Members),
			"events", len(seed.Events),
			"news", len(seed.News),
			"resources", len(seed.Resources),
		)
	})
}

// ClearAll empties every collection. The store is not reseeded afterwards.
func (s *Store) ClearAll(ctx context.Context) error {
	s.ensureSeeded()
	return s.load(ctx, Seed{})
}

// Reseed replaces every collection with a fresh copy of the fixture, anchored
// at the current time.
func (s *Store) Reseed(ctx context.Context) error {
	s.ensureSeeded()
	return s.load(ctx, s.fixture.Materialize(s.now()))
}

func (s *Store) load(ctx context.Context, seed Seed) error {
	if err := s.members.replace(ctx, seed.Members); err != nil {
		return fmt.Errorf("load members: %w", err)
	}
	if err := s.events.replace(ctx, seed.Events); err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	if err := s.news.replace(ctx, seed.News); err != nil {
		return fmt.Errorf("load news: %w", err)
	}
	if err := s.resources.replace(ctx, seed.Resources); err != nil {
		return fmt.Errorf("load resources: %w", err)
	}
	return nil
}
