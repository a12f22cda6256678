package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodrescue/internal/auth"
	"foodrescue/pkg/types"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("failed to decode register body")
		s.serverError(w)
		return
	}

	user, err := s.credentials.Register(r.Context(), auth.RegisterParams{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Password:  body.Password,
		Role:      types.UserRole(body.Role),
	})
	if err != nil {
		if errors.Is(err, types.ErrDuplicateEmail) {
			s.writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}

		s.logger.WithError(err).Error("failed to register user")
		s.serverError(w)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.WithError(err).Error("failed to issue token after registration")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.WithError(err).Error("failed to decode login body")
		s.serverError(w)
		return
	}

	user, err := s.credentials.Verify(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			s.writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		s.logger.WithError(err).Error("failed to verify credentials")
		s.serverError(w)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.WithError(err).Error("failed to issue token after login")
		s.serverError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
