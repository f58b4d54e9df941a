package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/msmahatha/agroCart-harvest-hub/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const tokenTTL = 24 * time.Hour

// Claims carried inside the access token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

type Service struct {
	profiles ProfileRepository
	sessions SessionStore
	secret   []byte
	logger   *zap.Logger
}

func NewService(profiles ProfileRepository, sessions SessionStore, secret []byte, logger *zap.Logger) *Service {
	return &Service{
		profiles: profiles,
		sessions: sessions,
		secret:   secret,
		logger:   logger,
	}
}

// SignUp registers a new account and logs it in, returning the user and a
// signed access token.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: malformed email", ErrInvalidCredentials)
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	profile := &Profile{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		return nil, "", err
	}

	return s.issueToken(ctx, profile)
}

// Login verifies credentials and returns the user with a fresh access token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	profile, err := s.profiles.GetProfileByEmail(ctx, email)
	if errors.Is(err, ErrProfileNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("load profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	return s.issueToken(ctx, profile)
}

func (s *Service) issueToken(ctx context.Context, profile *Profile) (*domain.User, string, error) {
	now := time.Now()
	claims := Claims{
		Email: profile.Email,
		Name:  profile.Name,
		Admin: profile.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.sessions.Create(ctx, claims.ID, profile.ID.String(), tokenTTL); err != nil {
		return nil, "", fmt.Errorf("store session: %w", err)
	}

	user := &domain.User{
		ID:        profile.ID.String(),
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		IsAdmin:   profile.IsAdmin,
		CreatedAt: profile.CreatedAt,
	}
	return user, signed, nil
}

// Validate parses a token and checks its session is still live. Returns the
// user the token was issued to.
func (s *Service) Validate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !live {
		return nil, ErrInvalidToken
	}

	return &domain.User{
		ID:      claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		IsAdmin: claims.Admin,
	}, nil
}

// Logout revokes the token's session; the JWT itself dies with it.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, claims.ID)
}

func (s *Service) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
