package domain

import (
	"context"
	"slices"
	"time"
)

// MemberRole is a chapter role held by a member.
type MemberRole string

const (
	RoleMember        MemberRole = "Member"
	RoleOfficer       MemberRole = "Officer"
	RolePresident     MemberRole = "President"
	RoleVicePresident MemberRole = "Vice President"
	RoleSecretary     MemberRole = "Secretary"
	RoleTreasurer     MemberRole = "Treasurer"
	RoleAdviser       MemberRole = "Adviser"
)

// MemberRoles lists every accepted role in display order.
var MemberRoles = []MemberRole{
	RoleMember, RoleOfficer, RolePresident, RoleVicePresident, RoleSecretary, RoleTreasurer, RoleAdviser,
}

// Valid reports whether r is one of MemberRoles.
func (r MemberRole) Valid() bool {
	return slices.Contains(MemberRoles, r)
}

// GradeLevel is a member's school year.
type GradeLevel string

const (
	Grade9       GradeLevel = "9th"
	Grade10      GradeLevel = "10th"
	Grade11      GradeLevel = "11th"
	Grade12      GradeLevel = "12th"
	GradeCollege GradeLevel = "College"
)

// GradeLevels lists every accepted grade level in display order.
var GradeLevels = []GradeLevel{Grade9, Grade10, Grade11, Grade12, GradeCollege}

// Valid reports whether g is one of GradeLevels.
func (g GradeLevel) Valid() bool {
	return slices.Contains(GradeLevels, g)
}

// Member represents a chapter member.
type Member struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Chapter        string     `json:"chapter"`
	Role           MemberRole `json:"role"`
	GradeLevel     GradeLevel `json:"grade_level"`
	Interests      []string   `json:"interests"`
	JoinDate       time.Time  `json:"join_date"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
}

// ProfileChanges holds the member fields an update may replace.
type ProfileChanges struct {
	Name       string
	Email      string
	Phone      string
	Chapter    string
	Role       MemberRole
	GradeLevel GradeLevel
}

// Clone returns a copy of m that shares no slices with it.
func (m Member) Clone() Member {
	m.Interests = cloneStrings(m.Interests)
	return m
}

// WithProfile returns a copy of m with the profile fields replaced. ID, JoinDate,
// interests and picture are kept.
func (m Member) WithProfile(c ProfileChanges) Member {
	out := m.Clone()
	out.Name = c.Name
	out.Email = c.Email
	out.Phone = c.Phone
	out.Chapter = c.Chapter
	out.Role = c.Role
	out.GradeLevel = c.GradeLevel
	return out
}

// WithInterests returns a copy of m with interests replaced by the de-duplicated set.
func (m Member) WithInterests(interests []string) Member {
	out := m.Clone()
	out.Interests = uniqueStrings(interests)
	return out
}

// MemberRepository defines storage for members.
type MemberRepository interface {
	List(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, member Member) (Member, error)
	Update(ctx context.Context, member Member) error
}
