package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aiof/projection-engine/internal/calculation"
)

// errBadRequest marks client errors found while decoding a request
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: msg})
}

// statusFor maps engine and decoding errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, calculation.ErrEmptyInput),
		errors.Is(err, calculation.ErrDivisionByZero):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error("engine failure")
		writeMessage(w, status, "internal error")
		return
	}
	writeMessage(w, status, err.Error())
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}
