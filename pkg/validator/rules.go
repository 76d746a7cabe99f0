package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// emailRegex accepts anything shaped like local@domain.tld; the auth
	// service performs its own authoritative validation.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// imageURLRegex matches http(s) URLs pointing at common raster formats.
	imageURLRegex = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif)$`)
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// MinLen validates that a string is at least min bytes long.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// Match validates that two values are equal, e.g. password confirmation.
func Match(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:   field,
			Message: "values do not match",
		},
	}
}

// ValidEmail validates basic email syntax. Empty values fail; combine with
// Required for a dedicated missing-field message.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidImageURL validates that a value is an http(s) URL ending with a known
// image extension.
func ValidImageURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return imageURLRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid image URL",
		},
	}
}
