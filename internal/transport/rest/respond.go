package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

// ErrorResponse is the JSON error envelope for all REST endpoints.
type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []FieldErrorResponse `json:"fields,omitempty"`
}

// FieldErrorResponse describes a validation failure for one input field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps service errors onto HTTP responses. Input-contract
// violations become 400 with per-field details; anything else is a 500
// without internals leaking to the caller.
func writeError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make([]FieldErrorResponse, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, FieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: fields})
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// decodeJSON reads the request body into v. A malformed body is reported
// as a validation error on the "body" field so writeError turns it into
// a 400.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close() //nolint:errcheck
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
