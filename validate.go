package users

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

const (
	FieldName     = "Name"
	FieldUsername = "Username"
	FieldEmail    = "Email"
)

var (
	// whitespace here is everything strings.TrimSpace strips, not just RE2's \s
	nameRegexp     = regexp.MustCompile(`^[A-Za-z\t\n\v\f\r\x{85}\p{Z}]{2,50}$`)
	usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)
	emailRegexp    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// markup and script fragments that are never accepted in any field
var injectionMarkers = []string{
	"<script", "</script>",
	"<iframe", "</iframe>",
	"<object", "</object>",
	"<embed", "</embed>",
	"javascript:",
	"onerror=",
	"onload=",
	"onclick=",
	"onmouseover=",
}

type fieldRule struct {
	field   string
	pattern *regexp.Regexp
	reason  string
}

var (
	nameRule = fieldRule{
		field:   FieldName,
		pattern: nameRegexp,
		reason:  "Name must be 2-50 characters and contain only letters and spaces",
	}
	usernameRule = fieldRule{
		field:   FieldUsername,
		pattern: usernameRegexp,
		reason:  "Username must be 3-20 characters and contain only letters, numbers, hyphens, and underscores",
	}
	emailRule = fieldRule{
		field:   FieldEmail,
		pattern: emailRegexp,
		reason:  "Email must be in a valid format",
	}
)

// ValidateName returns the trimmed name or an ErrInvalidInput FieldError.
func ValidateName(name string) (string, error) {
	return nameRule.validate(name)
}

// ValidateUsername returns the trimmed username or an ErrInvalidInput FieldError.
func ValidateUsername(username string) (string, error) {
	return usernameRule.validate(username)
}

// ValidateEmail returns the trimmed email or an ErrInvalidInput FieldError.
func ValidateEmail(email string) (string, error) {
	return emailRule.validate(email)
}

// ValidateUser checks name, username and email in that order and returns the
// canonical user fields. The first failing field is reported.
func ValidateUser(name, username, email string) (User, error) {
	n, err := ValidateName(name)
	if err != nil {
		return User{}, err
	}

	u, err := ValidateUsername(username)
	if err != nil {
		return User{}, err
	}

	e, err := ValidateEmail(email)
	if err != nil {
		return User{}, err
	}

	return User{Name: n, Username: u, Email: e}, nil
}

func (r fieldRule) validate(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalid(r.field, r.field+" is required")
	}

	if containsMarkup(v) {
		return "", invalid(r.field, r.field+" contains invalid content")
	}

	if !r.pattern.MatchString(v) {
		return "", invalid(r.field, r.reason)
	}

	return v, nil
}

func containsMarkup(s string) bool {
	lower := asciiLower(s)
	for _, m := range injectionMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// asciiLower lowers A-Z only, leaving every other rune untouched.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// fold returns the case-folded form used for case-insensitive comparisons.
// Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
