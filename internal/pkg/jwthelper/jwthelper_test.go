package jwthelper_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wushufed/tournament-backend/internal/pkg/jwthelper"
)

func TestGenerateAndParseToken(t *testing.T) {
	signingKey := []byte("test-signing-key")
	userID := uuid.New()

	token, err := jwthelper.GenerateToken(signingKey, userID, jwthelper.RoleAthlete, "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken(signingKey, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, jwthelper.RoleAthlete, claims.Role)
	assert.Equal(t, "test-agent", claims.UserAgent)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("key-one"), uuid.New(), jwthelper.RoleInstitution, "")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("key-two"), token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := jwthelper.ParseToken([]byte("key"), "not.a.token")
	assert.Error(t, err)
}
