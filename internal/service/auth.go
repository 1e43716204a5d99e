package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toybridge/toybridge-api/internal/config"
	"github.com/toybridge/toybridge-api/internal/pkg/jwthelper"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService signs in the single operator account configured for the
// deployment. There is no user table; the program serves one NGO team.
type AuthService struct {
	conf *config.APIConfig
}

func NewAuthService(conf *config.APIConfig) *AuthService {
	return &AuthService{
		conf: conf,
	}
}

func (s *AuthService) SignIn(_ context.Context, email, password string) (string, error) {
	if email != s.conf.AdminEmail || password != s.conf.AdminPassword {
		return "", ErrInvalidCredentials
	}

	ttl := time.Duration(s.conf.JWTExpiryHours) * time.Hour
	token, err := jwthelper.GenerateToken(s.conf.JWTSigningKey, email, ttl)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return token, nil
}
