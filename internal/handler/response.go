package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/regform/regform-go/internal/form"
	"github.com/regform/regform-go/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

var tagMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of name, email, password",
	"max":      "is too long",
}

// decodeJSON reads a size-limited JSON body into dst and runs struct
// validation. It writes the error response itself and reports false on
// failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, false)
}

// decodeOptionalJSON is decodeJSON for endpoints where an empty body means
// "use the defaults" and dst is left as is.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decodeBody(w, r, dst, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if r.Body == nil {
		r.Body = http.NoBody
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !(allowEmpty && errors.Is(err, io.EOF)) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return false
		}

		fields := make([]form.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			msg, ok := tagMessages[fe.Tag()]
			if !ok {
				msg = "is invalid"
			}
			fields = append(fields, form.FieldError{Field: form.Field(fe.Field()), Message: msg})
		}
		writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
			Error:  "invalid request",
			Fields: fields,
		})
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
