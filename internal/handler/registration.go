package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/regform/regform-go/internal/form"
	"github.com/regform/regform-go/internal/middleware"
	"github.com/regform/regform-go/internal/model"
	"github.com/regform/regform-go/internal/service"
)

// RegistrationHandler handles HTTP requests for the registration form.
type RegistrationHandler struct {
	service *service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// HandleValidateField handles POST /api/v1/fields/validate requests.
func (h *RegistrationHandler) HandleValidateField(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.ValidateField(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownField) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/password/strength requests.
func (h *RegistrationHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.EvaluatePassword(req))
}

// HandleRegister handles POST /api/v1/registration requests.
func (h *RegistrationHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegistrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		var failure *form.ValidationFailure
		if errors.As(err, &failure) {
			writeJSON(w, http.StatusUnprocessableEntity, model.ValidationErrorResponse{
				Error:  "validation failed",
				Fields: failure.Errors,
			})
			return
		}
		slog.Error("registration failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleConfirm handles GET /api/v1/registration/confirm requests.
// The route must sit behind middleware.ConfirmationAuth.
func (h *RegistrationHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Confirm(claims))
}
