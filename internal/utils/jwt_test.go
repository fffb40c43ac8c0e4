package utils

import (
	"testing"
	"time"

	"github.com/fieldpress/fieldpress/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("fieldpress", 42, models.RoleAdmin, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "fieldpress")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, string(models.RoleAdmin), parsed.Role)
}

func TestGenerateJWTToken_MissingParams(t *testing.T) {
	_, err := GenerateJWTToken("", 1, models.RoleUser, time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("fieldpress", 1, models.RoleUser, 0, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("fieldpress", 1, models.RoleUser, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("fieldpress", 1, models.RoleUser, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-secret", "fieldpress")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", 1, models.RoleUser, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "fieldpress")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("fieldpress", 1, models.RoleUser, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "secret", "fieldpress")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "secret", "fieldpress")
	assert.Error(t, err)
}
