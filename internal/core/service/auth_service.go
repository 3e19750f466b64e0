package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
	"github.com/local-bazaar/bazaar-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a principal with role=user and status=active. Registering
// an email that already exists is a no-op: the existing principal is returned
// with AlreadyExisted set, and nothing is overwritten.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	principal := &domain.Principal{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, principal)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalExists) {
			existing, findErr := s.repo.FindByEmail(ctx, in.Email)
			if findErr != nil {
				return nil, findErr
			}
			return &ports.RegisterResult{Principal: existing, AlreadyExisted: true}, nil
		}
		return nil, err
	}
	return &ports.RegisterResult{Principal: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	principal, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(principal)
	if err != nil {
		return "", nil, err
	}

	return token, principal, nil
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	claims := jwt.MapClaims{
		"email": p.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
