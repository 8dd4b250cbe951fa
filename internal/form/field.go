package form

import (
	"regexp"
	"strings"
	"unicode"
)

// Field names a registration form input.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Fields lists the registration form inputs in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword}

const (
	MsgRequired     = "This field is required."
	MsgInvalidEmail = "Please enter a valid email address."
	MsgWeakPassword = "Password must be 12+ characters with upper, lower, number, and special symbol."
)

// ASCII classes are spelled out: (?i) would fold in U+017F and U+212A.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidationResult is the verdict for a single field. Message is empty when Valid.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Valid reports whether f is one of the registration form inputs.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Validate checks value against the rules for field.
// Fields other than email and password only need to be non-blank.
func Validate(field Field, value string) ValidationResult {
	var message string

	switch {
	case isBlank(value):
		message = MsgRequired
	case field == FieldEmail && !emailPattern.MatchString(value):
		message = MsgInvalidEmail
	case field == FieldPassword && !MeetsPolicy(value):
		message = MsgWeakPassword
	}

	return ValidationResult{Valid: message == "", Message: message}
}

// isBlank reports whether value is empty after trimming the whitespace set
// browsers trim from input values: U+FEFF counts as whitespace, U+0085 does not.
func isBlank(value string) bool {
	return strings.TrimFunc(value, isFormSpace) == ""
}

func isFormSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
