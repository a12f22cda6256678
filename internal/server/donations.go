package server

import (
	"encoding/json"
	"net/http"
	"time"

	"foodrescue/pkg/types"
)

type addressPayload struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zipCode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createDonationRequest struct {
	FoodCategory  string         `json:"foodCategory"`
	FoodType      string         `json:"foodType"`
	Quantity      string         `json:"quantity"`
	Description   string         `json:"description"`
	Address       addressPayload `json:"address"`
	AvailableFrom time.Time      `json:"availableFrom"`
	AvailableTo   time.Time      `json:"availableTo"`
}

func (s *Service) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	claims, err := s.claimsFromContext(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("missing claims on protected route")
		s.serverError(w)
		return
	}

	var body createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("failed to decode donation body")
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

	donation := types.FoodDonation{
		DonorID:       claims.UserID,
		FoodCategory:  body.FoodCategory,
		FoodType:      body.FoodType,
		Quantity:      body.Quantity,
		Description:   body.Description,
		AvailableFrom: body.AvailableFrom,
		AvailableTo:   body.AvailableTo,
		Status:        types.DonationStatusAvailable,
	}

	if err := s.donations.Create(r.Context(), &address, &donation); err != nil {
		s.logger.WithError(err).Error("failed to create donation")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Donation created successfully",
		"donationId": donation.ID,
	})
}

func (s *Service) handleListDonations(w http.ResponseWriter, r *http.Request) {
	listings, err := s.donations.Available(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, listings)
}
