package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleManager}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := svc.Parse("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.SecretKey.Session = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
	token, err := impl.Issue(&entity.User{ID: uuid.New(), Role: entity.RoleUser})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.Parse(token)
	assert.Error(t, err)
}
