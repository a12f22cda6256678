package server_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"foodrescue/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest(t *testing.T) {
	env := newTestEnv(t)

	token, user := env.register(t, "mia@example.com", types.UserRoleReceiver)

	rec := env.do(t, http.MethodPost, "/api/requests", map[string]any{
		"foodCategory": "staples",
		"foodType":     "rice",
		"quantity":     "10 kg",
		"description":  "Pantry restock",
		"address": map[string]any{
			"street":    "88 Willow Street",
			"city":      "Springfield",
			"state":     "IL",
			"zipCode":   "62702",
			"latitude":  39.8017,
			"longitude": -89.6437,
		},
		"neededBy": time.Now().Add(72 * time.Hour),
	}, token)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message   string `json:"message"`
		RequestID int64  `json:"requestId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Request created successfully", resp.Message)
	assert.Equal(t, int64(21), resp.RequestID)

	require.NotNil(t, env.requests.createdRequest)
	assert.Equal(t, user.ID, env.requests.createdRequest.ReceiverID)
	assert.Equal(t, user.ID, env.requests.createdAddress.UserID)
	assert.Equal(t, env.requests.createdAddress.ID, env.requests.createdRequest.DeliveryAddressID)
	assert.Equal(t, types.RequestStatusPending, env.requests.createdRequest.Status)
}

func TestListRequests(t *testing.T) {
	env := newTestEnv(t)

	token, _ := env.register(t, "noah@example.com", types.UserRoleVolunteer)

	env.requests.listings = []*types.RequestListing{
		{
			FoodRequest: types.FoodRequest{ID: 9, ReceiverID: 3, FoodType: "rice", Status: types.RequestStatusPending},
			City:        "Springfield",
			FirstName:   "Mia",
			Phone:       "555-0103",
		},
	}

	rec := env.do(t, http.MethodGet, "/api/requests", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []*types.RequestListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "rice", listings[0].FoodType)
	assert.Equal(t, types.RequestStatusPending, listings[0].Status)
}
