package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/regform/regform-go/internal/crypto"
	"github.com/regform/regform-go/internal/form"
	"github.com/regform/regform-go/internal/model"
)

// Recorder receives validation outcomes. *metrics.Metrics implements it.
type Recorder interface {
	FieldValidated(field form.Field, valid bool)
	SubmissionHandled(accepted bool)
}

type nopRecorder struct{}

func (nopRecorder) FieldValidated(form.Field, bool) {}
func (nopRecorder) SubmissionHandled(bool) {}

var ErrUnknownField = errors.New("unknown form field")

// RegistrationService validates registration input and accepts submissions.
// Nothing is stored: an accepted submission is answered with a digest of the
// password and a signed confirmation token.
type RegistrationService struct {
	digester    *crypto.Digester
	tokenSecret string
	tokenExpiry time.Duration
	recorder    Recorder
}

// NewRegistrationService creates a new RegistrationService. rec may be nil.
func NewRegistrationService(digester *crypto.Digester, secret string, expiry time.Duration, rec Recorder) *RegistrationService {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &RegistrationService{
		digester:    digester,
		tokenSecret: secret,
		tokenExpiry: expiry,
		recorder:    rec,
	}
}

// ValidateField returns the live verdict for one input. Password verdicts
// also carry the strength meter state.
func (s *RegistrationService) ValidateField(req model.ValidateFieldRequest) (model.ValidateFieldResponse, error) {
	field := form.Field(req.Field)
	if !field.Valid() {
		return model.ValidateFieldResponse{}, fmt.Errorf("%w: %q", ErrUnknownField, req.Field)
	}

	res := form.Validate(field, req.Value)
	s.recorder.FieldValidated(field, res.Valid)

	resp := model.ValidateFieldResponse{
		Field:   req.Field,
		Valid:   res.Valid,
		Message: res.Message,
	}
	if field == form.FieldPassword {
		strength := model.NewStrengthResponse(form.Evaluate(req.Value))
		resp.Strength = &strength
	}

	return resp, nil
}

// EvaluatePassword returns the checklist and strength meter state.
func (s *RegistrationService) EvaluatePassword(req model.StrengthRequest) model.StrengthResponse {
	return model.NewStrengthResponse(form.Evaluate(req.Password))
}

// Register runs the submission gate. A rejected submission returns a
// *form.ValidationFailure.
func (s *RegistrationService) Register(ctx context.Context, req model.RegistrationRequest) (model.RegistrationResponse, error) {
	data, err := form.Submit(req.Values())
	if err != nil {
		var failure *form.ValidationFailure
		if errors.As(err, &failure) {
			for _, fe := range failure.Errors {
				s.recorder.FieldValidated(fe.Field, false)
			}
		}
		s.recorder.SubmissionHandled(false)
		return model.RegistrationResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return model.RegistrationResponse{}, err
	}

	digest, err := s.digester.Digest(data[form.FieldPassword])
	if err != nil {
		return model.RegistrationResponse{}, fmt.Errorf("digesting password: %w", err)
	}

	submissionID := uuid.NewString()
	token, err := crypto.IssueConfirmation(submissionID, data[form.FieldName], data[form.FieldEmail], s.tokenSecret, s.tokenExpiry)
	if err != nil {
		return model.RegistrationResponse{}, fmt.Errorf("issuing confirmation token: %w", err)
	}

	s.recorder.SubmissionHandled(true)
	slog.Info("registration accepted", "submission_id", submissionID)

	return model.RegistrationResponse{
		SubmissionID:      submissionID,
		Name:              data[form.FieldName],
		Email:             data[form.FieldEmail],
		PasswordDigest:    digest,
		Message:           form.SuccessMessage(data),
		ConfirmationToken: token,
	}, nil
}

// Confirm turns validated confirmation claims into a response.
func (s *RegistrationService) Confirm(claims *crypto.ConfirmationClaims) model.ConfirmationResponse {
	return model.ConfirmationResponse{
		SubmissionID: claims.Subject,
		Name:         claims.Name,
		Email:        claims.Email,
	}
}
