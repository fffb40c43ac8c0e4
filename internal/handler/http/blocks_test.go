package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userSession builds a handler where any bearer token maps to a plain user.
func userSession(t *testing.T) *Handler {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 2, Role: string(models.RoleUser)}, nil
		},
	}
	return newTestHandler(t, &service.Services{AuthService: auth})
}

func TestListBlockTypes(t *testing.T) {
	h := userSession(t)

	req := httptest.NewRequest(http.MethodGet, "/block-types", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Data    []registry.BlockType `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "rich-text", resp.Data[0].Name)
}

func TestListBlockTypes_RequiresAuth(t *testing.T) {
	h := userSession(t)

	req := httptest.NewRequest(http.MethodGet, "/block-types", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetBlockType(t *testing.T) {
	h := userSession(t)

	req := httptest.NewRequest(http.MethodGet, "/block-types/rich-text", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rich Text")
}

func TestGetBlockType_Unknown(t *testing.T) {
	h := userSession(t)

	req := httptest.NewRequest(http.MethodGet, "/block-types/ghost", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBlockTypeFields(t *testing.T) {
	h := userSession(t)

	req := httptest.NewRequest(http.MethodGet, "/block-types/rich-text/fields", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content"`)
}
