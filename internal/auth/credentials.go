package auth

import (
	"context"
	"errors"
	"fmt"

	"foodrescue/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the credential store
// needs. Satisfied by store.UserRepository.
type UserStore interface {
	ByEmail(ctx context.Context, email string) (*types.User, error)
	Create(ctx context.Context, user *types.User) error
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      types.UserRole
}

// CredentialStore owns password hashing and lookup. Plaintext
// passwords never leave this package.
type CredentialStore struct {
	users UserStore
}

func NewCredentialStore(users UserStore) *CredentialStore {
	return &CredentialStore{users: users}
}

// Register persists a new user with a bcrypt hash of the password.
// Returns types.ErrDuplicateEmail if the email is already taken.
func (c *CredentialStore) Register(ctx context.Context, params RegisterParams) (*types.User, error) {
	_, err := c.users.ByEmail(ctx, params.Email)
	if err == nil {
		return nil, types.ErrDuplicateEmail
	}
	if !errors.Is(err, types.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: string(hash),
		Role:         params.Role,
	}

	if err := c.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Verify returns the user when email and password match. Unknown email
// and wrong password both come back as types.ErrInvalidCredentials so
// callers cannot enumerate accounts.
func (c *CredentialStore) Verify(ctx context.Context, email, password string) (*types.User, error) {
	user, err := c.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, types.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user for login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, types.ErrInvalidCredentials
	}

	return user, nil
}
