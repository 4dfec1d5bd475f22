package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorSilvaVS/enem/internal/domain/entity"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc, err := NewJWTService("test-secret", 1)
	require.NoError(t, err)
	user := &entity.User{ID: 7, Username: "ana", IsAdmin: true}

	// Act
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	claims, err := svc.ParseToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "jti должен быть заполнен")
	assert.Equal(t, "enem-api", claims.Issuer)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	// Arrange
	issuer, err := NewJWTService("secret-one", 1)
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-two", 1)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(&entity.User{ID: 1, Username: "ana"})
	require.NoError(t, err)

	// Act
	claims, err := verifier.ParseToken(token)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService("", 1)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
