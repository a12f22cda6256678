package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"foodrescue/internal/auth"
	"foodrescue/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

// DonationStore is the donation slice of the entity repository.
// Satisfied by store.DonationRepository.
type DonationStore interface {
	Create(ctx context.Context, address *types.Address, donation *types.FoodDonation) error
	Available(ctx context.Context) ([]*types.DonationListing, error)
}

// RequestStore is satisfied by store.RequestRepository.
type RequestStore interface {
	Create(ctx context.Context, address *types.Address, request *types.FoodRequest) error
	Pending(ctx context.Context) ([]*types.RequestListing, error)
}

// VolunteerStore is satisfied by store.VolunteerRepository.
type VolunteerStore interface {
	Create(ctx context.Context, volunteer *types.Volunteer, days []string, tasks []string) error
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	credentials *auth.CredentialStore
	tokens      *auth.TokenService

	donations  DonationStore
	requests   RequestStore
	volunteers VolunteerStore

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	credentials *auth.CredentialStore,
	tokens *auth.TokenService,
	donations DonationStore,
	requests RequestStore,
	volunteers VolunteerStore,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		credentials: credentials,
		tokens:      tokens,

		donations:  donations,
		requests:   requests,
		volunteers: volunteers,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for httptest-driven tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/register", s.handleRegister, http.MethodPost)
	r.HandleFunc("/api/login", s.handleLogin, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/api/donations", s.handleCreateDonation, http.MethodPost)
		r.HandleFunc("/api/donations", s.handleListDonations, http.MethodGet)
		r.HandleFunc("/api/requests", s.handleCreateRequest, http.MethodPost)
		r.HandleFunc("/api/requests", s.handleListRequests, http.MethodGet)
		r.HandleFunc("/api/volunteers", s.handleRegisterVolunteer, http.MethodPost)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
