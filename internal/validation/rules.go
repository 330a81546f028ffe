// Package validation checks raw member input before any profile change is applied.
//
// Each validator runs its syntactic rules and then its semantic rules, in a fixed
// order, and reports only the first rule that fails.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"chapterhub/internal/domain"
)

// Field names carried by ValidationError.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldChapter    = "chapter"
	FieldRole       = "role"
	FieldGradeLevel = "grade_level"
)

// Length limits.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	EmailMaxLength   = 254
	EmailLocalMax    = 64
	PhoneDigits      = 10
	ChapterMinLength = 3
	ChapterMaxLength = 100
)

var (
	emailRegexp      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneShapeRegexp = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

// typoDomains maps common misspellings to the domain the member most likely meant.
var typoDomains = map[string]string{
	"gmial.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"gmal.com":    "gmail.com",
	"gnail.com":   "gmail.com",
	"yahooo.com":  "yahoo.com",
	"yaho.com":    "yahoo.com",
	"hotmial.com": "hotmail.com",
	"hotmal.com":  "hotmail.com",
	"outlok.com":  "outlook.com",
	"iclod.com":   "icloud.com",
}

// rule returns a rejection message, or "" when value passes.
type rule func(value string) string

// check applies rules to the trimmed value and stops at the first rejection.
func check(field, raw string, rules ...rule) error {
	value := strings.TrimSpace(raw)
	for _, r := range rules {
		if msg := r(value); msg != "" {
			return domain.NewValidationError(field, msg)
		}
	}
	return nil
}

func required(msg string) rule {
	return func(v string) string {
		if v == "" {
			return msg
		}
		return ""
	}
}

func minLength(n int, msg string) rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) < n {
			return msg
		}
		return ""
	}
}

func maxLength(n int, msg string) rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return msg
		}
		return ""
	}
}

// Name validates a member's display name.
func Name(raw string) error {
	return check(FieldName, raw,
		required("Name is required"),
		minLength(NameMinLength, "Name must be at least 2 characters"),
		func(v string) string {
			for _, r := range v {
				if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
					return "Name can only contain letters, spaces, hyphens, and apostrophes"
				}
			}
			return ""
		},
		func(v string) string {
			stripped := strings.NewReplacer(" ", "", "-", "", "'", "").Replace(v)
			if stripped == "" {
				return "Name must contain at least one letter"
			}
			return ""
		},
		maxLength(NameMaxLength, "Name must be less than 100 characters"),
	)
}

// Email validates an email address and catches well-known domain typos.
func Email(raw string) error {
	return check(FieldEmail, raw,
		required("Email is required"),
		func(v string) string {
			if !emailRegexp.MatchString(v) {
				return "Please enter a valid email address"
			}
			return ""
		},
		func(v string) string {
			lower := strings.ToLower(v)
			for typo, want := range typoDomains {
				if strings.HasSuffix(lower, "@"+typo) {
					return "Did you mean " + want + "?"
				}
			}
			return ""
		},
		func(v string) string {
			if len(v) > EmailMaxLength {
				return "Email address is too long"
			}
			return ""
		},
		func(v string) string {
			local, _, _ := strings.Cut(v, "@")
			if len(local) > EmailLocalMax {
				return "Email username is too long"
			}
			return ""
		},
	)
}

// Phone validates a 10-digit North American phone number. Digits-only input is
// accepted; punctuated input must use the (XXX) XXX-XXXX shape.
func Phone(raw string) error {
	return check(FieldPhone, raw,
		required("Phone number is required"),
		func(v string) string {
			if len(digitsOnly(v)) != PhoneDigits {
				return "Phone number must be 10 digits"
			}
			return ""
		},
		func(v string) string {
			if implausibleDigits(digitsOnly(v)) {
				return "Please enter a valid phone number"
			}
			return ""
		},
		func(v string) string {
			if d := digitsOnly(v); d[0] == '0' || d[0] == '1' {
				return "Invalid area code"
			}
			return ""
		},
		func(v string) string {
			if strings.ContainsAny(v, "()-") && !phoneShapeRegexp.MatchString(v) {
				return "Please use format (XXX) XXX-XXXX"
			}
			return ""
		},
	)
}

// Chapter validates a chapter name.
func Chapter(raw string) error {
	return check(FieldChapter, raw,
		required("Chapter name is required"),
		minLength(ChapterMinLength, "Chapter name must be at least 3 characters"),
		maxLength(ChapterMaxLength, "Chapter name must be less than 100 characters"),
		func(v string) string {
			if strings.IndexFunc(v, unicode.IsLetter) < 0 {
				return "Chapter name must contain letters"
			}
			return ""
		},
	)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// implausibleDigits flags repeated digits and the sequential runs people type as filler.
func implausibleDigits(d string) bool {
	if d == "1234567890" || d == "9876543210" {
		return true
	}
	return strings.Count(d, d[:1]) == len(d)
}
