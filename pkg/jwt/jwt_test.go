package jwt

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	ctx := context.Background()

	token, err := Generate(ctx, "user-42", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseUserID(ctx, token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestParseUserID_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := Generate(ctx, "user-42", "test-secret")
	require.NoError(t, err)

	_, err = ParseUserID(ctx, token, "other-secret")
	assert.Error(t, err)
}

func TestParseUserID_Garbage(t *testing.T) {
	_, err := ParseUserID(context.Background(), "not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestParseTokenFromHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ParseTokenFromHeader(r)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestParseTokenFromHeader_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	_, err := ParseTokenFromHeader(r)
	assert.Error(t, err)
}

func TestParseTokenFromHeader_NoBearerPrefix(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Token abc")

	_, err := ParseTokenFromHeader(r)
	assert.Error(t, err)
}
