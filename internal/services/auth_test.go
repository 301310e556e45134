package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(t *testing.T, expiration time.Duration) AuthService {
	t.Helper()
	auth, err := NewAuthService("test-secret", expiration, bcrypt.MinCost)
	require.NoError(t, err)
	return auth
}

func TestNewAuthServiceValidation(t *testing.T) {
	_, err := NewAuthService("", time.Hour, bcrypt.MinCost)
	assert.Error(t, err)

	_, err = NewAuthService("secret", time.Hour, 31)
	assert.Error(t, err)

	_, err = NewAuthService("secret", time.Second, bcrypt.MinCost)
	assert.Error(t, err)
}

func TestIssueAndVerifyToken(t *testing.T) {
	auth := testAuthService(t, time.Hour)
	userID := uuid.New()

	token, err := auth.IssueToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	auth := testAuthService(t, time.Hour)
	other, err := NewAuthService("another-secret", time.Hour, bcrypt.MinCost)
	require.NoError(t, err)

	token, err := other.IssueToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = auth.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := testAuthService(t, time.Hour)

	_, err := auth.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	auth := testAuthService(t, time.Minute)

	// Same secret, exp already in the past.
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.VerifyToken(expired)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsUnexpectedMethod(t *testing.T) {
	auth := testAuthService(t, time.Hour)

	claims := jwt.MapClaims{"sub": uuid.New().String()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.VerifyToken(unsigned)
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	auth := testAuthService(t, time.Hour)

	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.Error(t, auth.CheckPassword(hash, "wrong-pass"))
}
