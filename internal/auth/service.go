package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"     // UUID generation
	"golang.org/x/crypto/bcrypt" // Password hashing

	"debt_tracker/internal/domain"
	"debt_tracker/internal/repository"
	"debt_tracker/internal/utils"
)

// Service issues and validates access tokens and owns the identity lifecycle.
type Service struct {
	users  repository.UserStore
	secret string
	ttl    time.Duration
}

// NewService builds a credential service. secret signs tokens, ttl is the
// validity window of each issued token.
func NewService(users repository.UserStore, secret string, ttl time.Duration) *Service {
	return &Service{users: users, secret: secret, ttl: ttl}
}

// Register creates a new identity and returns an access token for it.
// Returns domain.ErrDuplicateEmail when the email is already registered.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}
	// Bcrypt with the default adaptive cost; the latency is intentional.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  string(hash),
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.InsertOne(ctx, &user); err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.Email, s.secret, s.ttl)
}

// Login verifies credentials and returns an access token. Unknown emails and
// wrong passwords are indistinguishable: both return domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.Email, s.secret, s.ttl)
}

// ResolveIdentity validates a token and loads the identity it names. Any
// defect, a bad signature, expiry, or a subject that no longer exists, yields
// domain.ErrUnauthenticated.
func (s *Service) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
