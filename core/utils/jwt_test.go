package utils

import (
	"os"
	"testing"

	"campus-recommender/core/config"
	"campus-recommender/core/constants"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, constants.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, constants.RoleStudent, claims.Role)
}

func TestValidateAndParseToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateAndParseToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateAndParseToken_RejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), constants.RoleAdmin)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateAndParseToken(tampered)
	assert.Error(t, err)
}
