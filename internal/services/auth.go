package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the capability boundary for authentication: issue and
// verify tokens, hash and check passwords. Handlers never touch JWT or
// bcrypt directly.
type AuthService interface {
	IssueToken(userID uuid.UUID, username string) (string, error)
	VerifyToken(token string) (uuid.UUID, error)
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) error
}

type authService struct {
	secret     []byte
	expiration time.Duration
	bcryptCost int
}

func NewAuthService(secret string, expiration time.Duration, bcryptCost int) (AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d", bcryptCost)
	}
	if expiration < time.Minute {
		return nil, fmt.Errorf("token expiration too short: %s", expiration)
	}

	return &authService{
		secret:     []byte(secret),
		expiration: expiration,
		bcryptCost: bcryptCost,
	}, nil
}

// IssueToken implements AuthService.
func (s *authService) IssueToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken implements AuthService. Returns the user id the token was
// issued for.
func (s *authService) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("token has no subject: %w", err)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}

	return userID, nil
}

// HashPassword implements AuthService.
func (s *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword implements AuthService.
func (s *authService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password mismatch: %w", err)
	}

	return nil
}
