// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// Responder turns errors into the API's JSON error contract.
type Responder struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewResponder(logger Logger) *Responder {
	return &Responder{logger: logger}
}

// detailResponse is the error envelope every failure shares:
// {"detail": "<message>"}.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Respond normalizes any error to a StandardError and writes the matching
// status and {"detail": ...} body. Expected request-scoped failures are not
// logged as errors; unexpected ones are.
func (h *Responder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := h.normalizeError(err)
	status := HTTPStatus(stdErr.Code)

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", map[string]interface{}{
			"method":  r.Method,
			"path":    r.URL.Path,
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(detailResponse{Detail: stdErr.Message})
}

// normalizeError ensures we always have a StandardError.
func (h *Responder) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
