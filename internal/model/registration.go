package model

import "github.com/regform/regform-go/internal/form"

// ValidateFieldRequest asks for the live verdict on one form input.
type ValidateFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=name email password"`
	Value string `json:"value" validate:"max=1024"`
}

// ValidateFieldResponse is the verdict for one input. Strength is only set
// for the password field.
type ValidateFieldResponse struct {
	Field    string            `json:"field"`
	Valid    bool              `json:"valid"`
	Message  string            `json:"message"`
	Strength *StrengthResponse `json:"strength,omitempty"`
}

// StrengthRequest asks for the strength meter state of a password.
type StrengthRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// StrengthResponse is the password checklist and strength meter state.
type StrengthResponse struct {
	Rules     form.PasswordState `json:"rules"`
	Satisfied int                `json:"satisfied"`
	Strength  string             `json:"strength"`
	Class     string             `json:"class"`
	Progress  float64            `json:"progress"`
	Resolved  bool               `json:"resolved"`
}

// NewStrengthResponse converts an evaluation into its API form.
func NewStrengthResponse(ev form.Evaluation) StrengthResponse {
	return StrengthResponse{
		Rules:     ev.State,
		Satisfied: ev.State.SatisfiedCount(),
		Strength:  ev.Strength.String(),
		Class:     ev.Strength.Class(),
		Progress:  ev.Progress,
		Resolved:  ev.Resolved,
	}
}

// RegistrationRequest is a full form submission.
type RegistrationRequest struct {
	Name     string `json:"name" validate:"max=1024"`
	Email    string `json:"email" validate:"max=1024"`
	Password string `json:"password" validate:"max=1024"`
}

// Values returns the submission keyed by form field.
func (r RegistrationRequest) Values() form.Values {
	return form.Values{
		form.FieldName:     r.Name,
		form.FieldEmail:    r.Email,
		form.FieldPassword: r.Password,
	}
}

// RegistrationResponse describes an accepted submission. The raw password is
// never echoed back; PasswordDigest is its Argon2id digest.
type RegistrationResponse struct {
	SubmissionID      string `json:"submission_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	PasswordDigest    string `json:"password_digest"`
	Message           string `json:"message"`
	ConfirmationToken string `json:"confirmation_token"`
}

// ConfirmationResponse is returned for a valid confirmation token.
type ConfirmationResponse struct {
	SubmissionID string `json:"submission_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

// ValidationErrorResponse rejects a request field by field.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields []form.FieldError `json:"fields"`
}
