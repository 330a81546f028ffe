package validation

import "chapterhub/internal/domain"

// Profile validates every field of in and returns the first failure. Fields are
// checked in the order name, email, phone, chapter, role, grade level.
func Profile(in domain.ProfileChanges) error {
	for _, validate := range []func() error{
		func() error { return Name(in.Name) },
		func() error { return Email(in.Email) },
		func() error { return Phone(in.Phone) },
		func() error { return Chapter(in.Chapter) },
		func() error { return Role(in.Role) },
		func() error { return Grade(in.GradeLevel) },
	} {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// Role rejects roles outside domain.MemberRoles.
func Role(r domain.MemberRole) error {
	if !r.Valid() {
		return domain.NewValidationError(FieldRole, "Please select a valid role")
	}
	return nil
}

// Grade rejects grade levels outside domain.GradeLevels.
func Grade(g domain.GradeLevel) error {
	if !g.Valid() {
		return domain.NewValidationError(FieldGradeLevel, "Please select a valid grade level")
	}
	return nil
}
