package user

import (
	"regexp"
	"strings"

	"rental-core/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.Validation("invalid email format")
	ErrInvalidRole  = errs.Validation("invalid role")
	ErrInvalidGSTIN = errs.Validation("invalid GSTIN format")
	ErrUserNotFound = errs.NotFound("user not found")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z0-9]{10}[0-9A-Z]{3}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// GSTIN is the 15 character Indian tax registration number. Empty is allowed
// for unregistered customers.
type GSTIN string

func NewGSTIN(s string) (GSTIN, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if !gstinRegex.MatchString(s) {
		return "", ErrInvalidGSTIN
	}
	return GSTIN(s), nil
}

func (g GSTIN) String() string {
	return string(g)
}
