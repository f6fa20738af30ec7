package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	svc := NewAuthService(string(hash), "test-secret")

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "battery staple")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("correct password yields organizer token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "correct horse")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token does not parse: %v", err)
		}
		if role, _ := claims["role"].(string); role != "organizer" {
			t.Errorf("expected organizer role claim, got %q", role)
		}
	})
}
