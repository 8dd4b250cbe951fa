package form

import (
	"fmt"
	"strings"
)

// Values holds raw form input keyed by field.
type Values map[Field]string

// CollectedData is the accepted submission, keyed by field.
type CollectedData map[Field]string

// FieldError is one failed field in a rejected submission.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationFailure rejects a submission. Errors are in form order.
type ValidationFailure struct {
	Errors []FieldError
}

func (e *ValidationFailure) Error() string {
	names := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		names[i] = string(fe.Field)
	}
	return fmt.Sprintf("form validation failed: %s", strings.Join(names, ", "))
}

// Message returns the failure message for field, or "" if it passed.
func (e *ValidationFailure) Message(field Field) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Submit validates every field and collects the raw values when all pass.
// On failure nothing is collected and values is left untouched.
func Submit(values Values) (CollectedData, error) {
	var failed []FieldError
	for _, f := range Fields {
		if res := Validate(f, values[f]); !res.Valid {
			failed = append(failed, FieldError{Field: f, Message: res.Message})
		}
	}
	if len(failed) > 0 {
		return nil, &ValidationFailure{Errors: failed}
	}

	data := make(CollectedData, len(Fields))
	for _, f := range Fields {
		data[f] = values[f]
	}
	return data, nil
}

// SuccessMessage renders the confirmation copy shown after a submission.
func SuccessMessage(data CollectedData) string {
	name := data[FieldName]
	if name == "" {
		name = "friend"
	}
	email := data[FieldEmail]
	if email == "" {
		email = "your inbox"
	}
	return fmt.Sprintf("Welcome aboard, %s! Check %s for next steps.", name, email)
}
