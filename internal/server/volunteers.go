package server

import (
	"encoding/json"
	"net/http"

	"foodrescue/pkg/types"
)

type registerVolunteerRequest struct {
	HasVehicle            bool     `json:"hasVehicle"`
	VehicleType           string   `json:"vehicleType"`
	EmergencyContactName  string   `json:"emergencyContactName"`
	EmergencyContactPhone string   `json:"emergencyContactPhone"`
	Availability          []string `json:"availability"`
	PreferredTasks        []string `json:"preferredTasks"`
}

func (s *Service) handleRegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	claims, err := s.claimsFromContext(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("missing claims on protected route")
		s.serverError(w)
		return
	}

	var body registerVolunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("failed to decode volunteer body")
		s.serverError(w)
		return
	}

	volunteer := types.Volunteer{
		UserID:                claims.UserID,
		HasVehicle:            body.HasVehicle,
		VehicleType:           body.VehicleType,
		EmergencyContactName:  body.EmergencyContactName,
		EmergencyContactPhone: body.EmergencyContactPhone,
	}

	if err := s.volunteers.Create(r.Context(), &volunteer, body.Availability, body.PreferredTasks); err != nil {
		s.logger.WithError(err).Error("failed to register volunteer")
		s.serverError(w)
		return
	}

	s.writeMessage(w, http.StatusCreated, "Volunteer registration completed")
}
