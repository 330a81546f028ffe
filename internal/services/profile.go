package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"chapterhub/internal/domain"
	"chapterhub/internal/validation"
)

type profileService struct {
	memberRepo domain.MemberRepository
	logger     *slog.Logger
	current    *domain.Member
}

// NewProfileService creates a ProfileService backed by memberRepo. The current
// member is the first stored member.
func NewProfileService(memberRepo domain.MemberRepository, logger *slog.Logger) domain.ProfileService {
	return &profileService{memberRepo: memberRepo, logger: orDiscard(logger)}
}

func (s *profileService) LoadCurrentMember(ctx context.Context) (domain.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return domain.Member{}, fmt.Errorf("list members: %w", err)
	}
	if len(members) == 0 {
		return domain.Member{}, fmt.Errorf("current member: %w", domain.ErrNotFound)
	}
	m := members[0]
	s.current = &m
	return m.Clone(), nil
}

func (s *profileService) CurrentMember() (domain.Member, bool) {
	if s.current == nil {
		return domain.Member{}, false
	}
	return s.current.Clone(), true
}

func (s *profileService) UpdateProfile(ctx context.Context, changes domain.ProfileChanges) (domain.Member, error) {
	if err := validation.Profile(changes); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.logger.Info("profile update rejected", "field", verr.Field, "reason", verr.Message)
		}
		return domain.Member{}, err
	}
	if s.current == nil {
		if _, err := s.LoadCurrentMember(ctx); err != nil {
			return domain.Member{}, err
		}
	}

	updated := s.current.WithProfile(domain.ProfileChanges{
		Name:       strings.TrimSpace(changes.Name),
		Email:      strings.TrimSpace(changes.Email),
		Phone:      FormatPhone(strings.TrimSpace(changes.Phone)),
		Chapter:    strings.TrimSpace(changes.Chapter),
		Role:       changes.Role,
		GradeLevel: changes.GradeLevel,
	})
	if err := s.memberRepo.Update(ctx, updated); err != nil {
		return domain.Member{}, fmt.Errorf("update member: %w", err)
	}
	s.current = &updated
	s.logger.Debug("profile updated", "member_id", updated.ID)
	return updated.Clone(), nil
}

// FormatPhone renders raw as (XXX) XXX-XXXX when it holds exactly ten digits,
// and returns it unchanged otherwise. It does not validate.
func FormatPhone(raw string) string {
	var digits []byte
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) != 10 {
		return raw
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
