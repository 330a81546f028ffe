package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chapterhub/internal/domain"

	"github.com/google/uuid"
)

// entity describes how a collection reads and copies its records.
type entity[T any] struct {
	kind   string
	id     func(T) string
	withID func(T, string) T
	clone  func(T) T
	// check is optional and guards record invariants on create and update.
	check func(T) error
}

// collection is an ordered, lock-guarded set of records keyed by ID. Every
// operation holds the lock for the whole simulated latency, so operations on one
// collection never interleave.
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	entity  entity[T]
	latency time.Duration
	ready   func()
	logger  *slog.Logger
}

func newCollection[T any](e entity[T], latency time.Duration, ready func(), logger *slog.Logger) *collection[T] {
	return &collection[T]{entity: e, latency: latency, ready: ready, logger: logger}
}

// begin seeds the store on first use, then locks the collection and waits out
// the simulated latency. The caller must call the returned unlock.
func (c *collection[T]) begin(ctx context.Context) (func(), error) {
	c.ready()
	c.mu.Lock()
	if err := sleep(ctx, c.latency); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	return c.mu.Unlock, nil
}

// List returns a snapshot of all records in insertion order.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	unlock, err := c.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.entity.clone(item))
	}
	return out, nil
}

// GetByID returns a snapshot of the record with id, or domain.ErrNotFound.
func (c *collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	unlock, err := c.begin(ctx)
	if err != nil {
		return zero, err
	}
	defer unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.entity.clone(c.items[i]), nil
	}
	return zero, fmt.Errorf("%s %s: %w", c.entity.kind, id, domain.ErrNotFound)
}

// Create stores item. An empty ID is replaced by a new UUID; an ID already in
// use is rejected with domain.ErrDuplicateID. The stored record is returned.
func (c *collection[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	unlock, err := c.begin(ctx)
	if err != nil {
		return zero, err
	}
	defer unlock()

	if c.entity.id(item) == "" {
		item = c.entity.withID(item, uuid.NewString())
	}
	id := c.entity.id(item)
	if c.indexOf(id) >= 0 {
		return zero, fmt.Errorf("%s %s: %w", c.entity.kind, id, domain.ErrDuplicateID)
	}
	if c.entity.check != nil {
		if err := c.entity.check(item); err != nil {
			return zero, err
		}
	}
	c.items = append(c.items, c.entity.clone(item))
	return c.entity.clone(item), nil
}

// Update replaces the record whose ID matches item. Updating an unknown ID does
// nothing and returns nil; services look records up first when they need a
// not-found error.
func (c *collection[T]) Update(ctx context.Context, item T) error {
	unlock, err := c.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	id := c.entity.id(item)
	i := c.indexOf(id)
	if i < 0 {
		c.logger.Debug("memory: update ignored, unknown id", "kind", c.entity.kind, "id", id)
		return nil
	}
	if c.entity.check != nil {
		if err := c.entity.check(item); err != nil {
			return err
		}
	}
	c.items[i] = c.entity.clone(item)
	return nil
}

// replace swaps the whole collection. Callers hold no lock.
func (c *collection[T]) replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := sleep(ctx, c.latency); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if c.entity.id(item) == id {
			return i
		}
	}
	return -1
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
