// Package validation checks user-supplied values before they reach the database.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidUsername = errors.New("username must be lowercase words joined by hyphens")
)

const (
	minNameLength = 2
	maxNameLength = 50
)

var usernamePattern = regexp.MustCompile(`^[a-z]+(-[a-z]+)+(-[0-9]+)?$`)

// ValidateName checks a child's display name. Letters from any script are
// allowed along with spaces, hyphens and apostrophes.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	length := utf8.RuneCountInString(name)
	if length < minNameLength || length > maxNameLength {
		return fmt.Errorf("name must be between %d and %d characters", minNameLength, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsMark(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return fmt.Errorf("name contains invalid character %q", r)
	}
	return nil
}

// ValidateUsername checks the adjective-noun shape used for child logins
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}
