package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthService выдаёт токен организатора для HTTP-дашборда. Аккаунт
// один, пароль задаётся bcrypt-хэшем в конфигурации.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	passwordHash []byte
	jwtSecret    []byte
}

func NewAuthService(passwordHash, jwtSecret string) AuthService {
	return &authService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
	}
}

func (s *authService) Login(_ context.Context, password string) (string, error) {
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to compare password hash: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "organizer",
		"exp":  now.Add(24 * time.Hour).Unix(),
		"iat":  now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
