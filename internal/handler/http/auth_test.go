package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, email, _ string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "alice@example.com", email)
			return models.User{ID: 1, Username: username, Email: email, Role: models.RoleUser}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := `{"username":"alice","email":"alice@example.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := `{"username":"alice","email":"a@example.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "s3cret", password)
			return models.User{ID: 1, Username: "alice", Role: models.RoleAdmin}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := `{"username":"alice","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Authorization"), "Bearer ")

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := `{"username":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestLogin_InactiveAccount(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrUserInactive
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := `{"username":"alice","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
