package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodrescue/internal/auth"
	"foodrescue/internal/server"
	"foodrescue/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

type fakeUsers struct {
	byEmail map[string]*types.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*types.User{}, nextID: 1}
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*types.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) Create(_ context.Context, user *types.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return nil
}

type fakeDonations struct {
	createdAddress  *types.Address
	createdDonation *types.FoodDonation
	listings        []*types.DonationListing
	err             error
}

func (f *fakeDonations) Create(_ context.Context, address *types.Address, donation *types.FoodDonation) error {
	if f.err != nil {
		return f.err
	}
	address.ID = 7
	donation.PickupAddressID = address.ID
	donation.ID = 11
	f.createdAddress = address
	f.createdDonation = donation
	return nil
}

func (f *fakeDonations) Available(_ context.Context) ([]*types.DonationListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.listings == nil {
		return []*types.DonationListing{}, nil
	}
	return f.listings, nil
}

type fakeRequests struct {
	createdAddress *types.Address
	createdRequest *types.FoodRequest
	listings       []*types.RequestListing
	err            error
}

func (f *fakeRequests) Create(_ context.Context, address *types.Address, request *types.FoodRequest) error {
	if f.err != nil {
		return f.err
	}
	address.ID = 8
	request.DeliveryAddressID = address.ID
	request.ID = 21
	f.createdAddress = address
	f.createdRequest = request
	return nil
}

func (f *fakeRequests) Pending(_ context.Context) ([]*types.RequestListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.listings == nil {
		return []*types.RequestListing{}, nil
	}
	return f.listings, nil
}

type fakeVolunteers struct {
	created *types.Volunteer
	days    []string
	tasks   []string
	err     error
}

func (f *fakeVolunteers) Create(_ context.Context, volunteer *types.Volunteer, days []string, tasks []string) error {
	if f.err != nil {
		return f.err
	}
	volunteer.ID = 5
	f.created = volunteer
	f.days = days
	f.tasks = tasks
	return nil
}

type testEnv struct {
	svc        *server.Service
	tokens     *auth.TokenService
	users      *fakeUsers
	donations  *fakeDonations
	requests   *fakeRequests
	volunteers *fakeVolunteers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	config := &types.Config{
		ServerPort:      8080,
		ReadTimeoutSec:  1,
		WriteTimeoutSec: 1,
	}

	env := &testEnv{
		tokens:     auth.NewTokenService([]byte(testSigningKey), time.Hour),
		users:      newFakeUsers(),
		donations:  &fakeDonations{},
		requests:   &fakeRequests{},
		volunteers: &fakeVolunteers{},
	}

	svc, err := server.New(
		config,
		logger,
		auth.NewCredentialStore(env.users),
		env.tokens,
		env.donations,
		env.requests,
		env.volunteers,
	)
	require.NoError(t, err)

	env.svc = svc
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.svc.Handler().ServeHTTP(rec, req)
	return rec
}

type authResponse struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

// register creates an account through the API and returns the issued
// token together with the stored user.
func (e *testEnv) register(t *testing.T, email string, role types.UserRole) (string, *types.User) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/register", map[string]any{
		"firstName": "Dana",
		"lastName":  "Fields",
		"email":     email,
		"phone":     "555-0100",
		"password":  "orchard-crate-9",
		"role":      string(role),
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)

	return resp.Token, resp.User
}
