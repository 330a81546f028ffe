package services

import (
	"context"
	"testing"
	"time"

	"chapterhub/internal/domain"
	"chapterhub/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// newTestStore returns a store seeded at testNow. A nil fixture means the
// default sample data.
func newTestStore(t *testing.T, fixture *memory.Fixture) *memory.Store {
	t.Helper()
	s, err := memory.NewStore(memory.Options{Fixture: fixture, Now: fixedNow})
	require.NoError(t, err)
	return s
}

func newLoadedCalendar(t *testing.T, store *memory.Store) *calendarService {
	t.Helper()
	svc := NewCalendarService(store.Events(), nil).(*calendarService)
	svc.now = fixedNow
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc
}

func newLoadedNews(t *testing.T, store *memory.Store) *newsService {
	t.Helper()
	svc := NewNewsService(store.News(), nil).(*newsService)
	svc.now = fixedNow
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc
}

func newLoadedResources(t *testing.T, store *memory.Store) *resourceService {
	t.Helper()
	svc := NewResourceService(store.Resources(), nil).(*resourceService)
	svc.now = fixedNow
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func newsIDs(items []domain.NewsItem) []string {
	ids := make([]string, 0, len(items))
	for _, n := range items {
		ids = append(ids, n.ID)
	}
	return ids
}

func resourceIDs(resources []domain.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}
