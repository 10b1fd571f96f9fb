// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email, nickname or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateCredential is returned when the email or nickname is already registered.
	ErrDuplicateCredential = errors.New("email or nickname already registered")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrDuplicateCredential)

	// ErrNicknameAlreadyExists is returned when attempting to create a user with a nickname that already exists.
	ErrNicknameAlreadyExists = fmt.Errorf("nickname already exists: %w", ErrDuplicateCredential)

	// ErrInvalidCredentials is returned when the email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSignup is returned when signup input fails validation.
	ErrInvalidSignup = errors.New("invalid signup input")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
