package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrProfileNotFound = errors.New("profile not found")
)

// Profile is a stored account; PasswordHash never leaves this package.
type Profile struct {
	ID           uuid.UUID
	Email        string
	Name         string
	AvatarURL    string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Close() error
}
