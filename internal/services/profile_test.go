package services

import (
	"context"
	"testing"

	"chapterhub/internal/domain"
	"chapterhub/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChanges() domain.ProfileChanges {
	return domain.ProfileChanges{
		Name:       "Alexandra Johnson",
		Email:      "alexandra@outlook.com",
		Phone:      "5559876543",
		Chapter:    "Lincoln High School FBLA",
		Role:       domain.RolePresident,
		GradeLevel: domain.Grade12,
	}
}

func TestProfileService_LoadCurrentMember(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newTestStore(t, nil).Members(), nil)

	_, ok := svc.CurrentMember()
	assert.False(t, ok)

	m, err := svc.LoadCurrentMember(ctx)
	require.NoError(t, err)
	assert.Equal(t, "member-1", m.ID)

	cached, ok := svc.CurrentMember()
	require.True(t, ok)
	assert.Equal(t, m, cached)
}

func TestProfileService_LoadCurrentMemberEmptyStore(t *testing.T) {
	svc := NewProfileService(newTestStore(t, &memory.Fixture{}).Members(), nil)
	_, err := svc.LoadCurrentMember(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	svc := NewProfileService(store.Members(), nil)
	before, err := svc.LoadCurrentMember(ctx)
	require.NoError(t, err)

	changes := validChanges()
	changes.Name = "  Alexandra Johnson "
	got, err := svc.UpdateProfile(ctx, changes)
	require.NoError(t, err)

	assert.Equal(t, before.ID, got.ID)
	assert.Equal(t, before.JoinDate, got.JoinDate)
	assert.Equal(t, before.Interests, got.Interests)
	assert.Equal(t, "Alexandra Johnson", got.Name)
	assert.Equal(t, "(555) 987-6543", got.Phone)
	assert.Equal(t, domain.RolePresident, got.Role)

	stored, err := store.Members().GetByID(ctx, before.ID)
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	cached, _ := svc.CurrentMember()
	assert.Equal(t, got, cached)
}

func TestProfileService_UpdateProfileLoadsMemberWhenNeeded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, nil)
	svc := NewProfileService(store.Members(), nil)

	got, err := svc.UpdateProfile(ctx, validChanges())
	require.NoError(t, err)
	assert.Equal(t, "member-1", got.ID)
}

func TestProfileService_RejectedUpdateStoresNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProfileChanges)
		want   string
	}{
		{"name", func(c *domain.ProfileChanges) { c.Name = "J" }, "Name must be at least 2 characters"},
		{"email typo", func(c *domain.ProfileChanges) { c.Email = "john@gmial.com" }, "Did you mean gmail.com?"},
		{"phone sequence", func(c *domain.ProfileChanges) { c.Phone = "1234567890" }, "Please enter a valid phone number"},
		{"phone length", func(c *domain.ProfileChanges) { c.Phone = "123" }, "Phone number must be 10 digits"},
		{"chapter", func(c *domain.ProfileChanges) { c.Chapter = "" }, "Chapter name is required"},
		{"first failure wins", func(c *domain.ProfileChanges) {
			c.Email = "nope"
			c.Chapter = ""
		}, "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore(t, nil)
			svc := NewProfileService(store.Members(), nil)
			before, err := svc.LoadCurrentMember(ctx)
			require.NoError(t, err)

			changes := validChanges()
			tt.mutate(&changes)
			_, err = svc.UpdateProfile(ctx, changes)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Message)

			stored, err := store.Members().GetByID(ctx, before.ID)
			require.NoError(t, err)
			assert.Equal(t, before, stored)
			cached, _ := svc.CurrentMember()
			assert.Equal(t, before, cached)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"555.123.4567", "(555) 123-4567"},
		{"123", "123"},
		{"1-555-123-4567", "1-555-123-4567"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.in), tt.in)
	}
}
