// internal/server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	apierrors "mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/pkg/registry"
)

// messageResponse is the success envelope for signup and unregister.
type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		s.responder.Respond(w, r, apierrors.NewMissingParameterError("email"))
		return
	}

	if err := s.registry.AddParticipant(name, email); err != nil {
		metrics.SignupsTotal.WithLabelValues(name, "error").Inc()
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			s.responder.Respond(w, r, apierrors.NewActivityNotFoundError(name))
		case errors.Is(err, registry.ErrAlreadyRegistered):
			s.responder.Respond(w, r, apierrors.NewAlreadyRegisteredError(name, email))
		default:
			s.responder.Respond(w, r, err)
		}
		return
	}

	metrics.SignupsTotal.WithLabelValues(name, "success").Inc()
	s.updateRosterGauge(name)
	s.logger.Info("participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		s.responder.Respond(w, r, apierrors.NewMissingParameterError("email"))
		return
	}

	if err := s.registry.RemoveParticipant(name, email); err != nil {
		metrics.UnregistrationsTotal.WithLabelValues(name, "error").Inc()
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			s.responder.Respond(w, r, apierrors.NewActivityNotFoundError(name))
		case errors.Is(err, registry.ErrParticipantNotFound):
			s.responder.Respond(w, r, apierrors.NewParticipantNotFoundError(name, email))
		default:
			s.responder.Respond(w, r, err)
		}
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name, "success").Inc()
	s.updateRosterGauge(name)
	s.logger.Info("participant unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	// The confirmation wording is localized; clients key off the status code.
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s a été désinscrit de %s", email, name),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) updateRosterGauge(name string) {
	if a, err := s.registry.Get(name); err == nil {
		metrics.RosterSize.WithLabelValues(name).Set(float64(len(a.Participants)))
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
