package server

import (
	"encoding/json"
	"net/http"
	"time"

	"foodrescue/pkg/types"
)

type createRequestRequest struct {
	FoodCategory string         `json:"foodCategory"`
	FoodType     string         `json:"foodType"`
	Quantity     string         `json:"quantity"`
	Description  string         `json:"description"`
	Address      addressPayload `json:"address"`
	NeededBy     time.Time      `json:"neededBy"`
}

func (s *Service) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, err := s.claimsFromContext(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("missing claims on protected route")
		s.serverError(w)
		return
	}

	var body createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("failed to decode request body")
		s.serverError(w)
		return
	}

	address := types.Address{
		UserID:        claims.UserID,
		StreetAddress: body.Address.Street,
		City:          body.Address.City,
		State:         body.Address.State,
		ZipCode:       body.Address.ZipCode,
		Latitude:      body.Address.Latitude,
		Longitude:     body.Address.Longitude,
	}

	request := types.FoodRequest{
		ReceiverID:   claims.UserID,
		FoodCategory: body.FoodCategory,
		FoodType:     body.FoodType,
		Quantity:     body.Quantity,
		Description:  body.Description,
		NeededBy:     body.NeededBy,
		Status:       types.RequestStatusPending,
	}

	if err := s.requests.Create(r.Context(), &address, &request); err != nil {
		s.logger.WithError(err).Error("failed to create request")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Request created successfully",
		"requestId": request.ID,
	})
}

func (s *Service) handleListRequests(w http.ResponseWriter, r *http.Request) {
	listings, err := s.requests.Pending(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list requests")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, listings)
}
