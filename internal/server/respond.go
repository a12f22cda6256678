package server

import (
	"encoding/json"
	"net/http"
)

func (s *Service) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) writeMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"message": message})
}

// serverError is the catch-all response. The cause is logged at the
// call site; the caller only ever sees the fixed message.
func (s *Service) serverError(w http.ResponseWriter) {
	s.writeMessage(w, http.StatusInternalServerError, "Server error")
}
