package server_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"foodrescue/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	env := newTestEnv(t)

	token, user := env.register(t, "dana@example.com", types.UserRoleDonor)

	claims, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "donor", claims.Role)

	assert.Equal(t, "Dana", user.FirstName)
	assert.Equal(t, types.UserRoleDonor, user.Role)
}

func TestRegisterNeverLeaksPasswordHash(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/register", map[string]any{
		"firstName": "Dana",
		"lastName":  "Fields",
		"email":     "dana@example.com",
		"phone":     "555-0100",
		"password":  "orchard-crate-9",
		"role":      "donor",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	userPayload, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	_, leaked := userPayload["passwordHash"]
	assert.False(t, leaked)
	assert.NotContains(t, rec.Body.String(), "orchard-crate-9")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "dana@example.com", types.UserRoleDonor)

	rec := env.do(t, http.MethodPost, "/api/register", map[string]any{
		"firstName": "Dana",
		"lastName":  "Fields",
		"email":     "dana@example.com",
		"phone":     "555-0100",
		"password":  "orchard-crate-9",
		"role":      "donor",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
	assert.Len(t, env.users.byEmail, 1)
}

func TestLoginSuccess(t *testing.T) {
	env := newTestEnv(t)

	_, user := env.register(t, "dana@example.com", types.UserRoleReceiver)

	rec := env.do(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "dana@example.com",
		"password": "orchard-crate-9",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	claims, err := env.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "receiver", claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	env.register(t, "dana@example.com", types.UserRoleDonor)

	wrongPassword := env.do(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "dana@example.com",
		"password": "wrong",
	}, "")
	unknownEmail := env.do(t, http.MethodPost, "/api/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "orchard-crate-9",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, wrongPassword.Body.String())
}
