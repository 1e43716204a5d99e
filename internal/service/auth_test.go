package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toybridge/toybridge-api/internal/config"
	"github.com/toybridge/toybridge-api/internal/pkg/jwthelper"
)

func TestAuthService_SignIn(t *testing.T) {
	conf := &config.APIConfig{
		JWTSigningKey:  "test-signing-key",
		JWTExpiryHours: 24,
		AdminEmail:     "admin@example.com",
		AdminPassword:  "secret",
	}
	svc := NewAuthService(conf)

	token, err := svc.SignIn(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	claims, err := jwthelper.ParseToken(conf.JWTSigningKey, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestAuthService_SignIn_WrongCredentials(t *testing.T) {
	conf := &config.APIConfig{
		JWTSigningKey: "test-signing-key",
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret",
	}
	svc := NewAuthService(conf)

	_, err := svc.SignIn(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "someone@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
