package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/tinct/pkg/archive"
	"github.com/matzehuels/tinct/pkg/color"
	"github.com/matzehuels/tinct/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError classifies err and writes the matching status and error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := classify(err)
	status := httpStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    code,
		Message: errors.UserMessage(err),
	}})
}

// classify maps library sentinels onto boundary error codes. Errors that
// already carry a code keep it.
func classify(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	switch {
	case stderrors.Is(err, color.ErrBadOrder):
		return errors.ErrCodeInvalidOrder
	case stderrors.Is(err, color.ErrUnknownStrategy):
		return errors.ErrCodeInvalidStrategy
	case stderrors.Is(err, color.ErrBudgetExhausted):
		return errors.ErrCodeBudgetExhausted
	case stderrors.Is(err, archive.ErrNotFound):
		return errors.ErrCodeRunNotFound
	}
	return errors.ErrCodeInternal
}

func httpStatus(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidOrder,
		errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeRunNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeBudgetExhausted:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
