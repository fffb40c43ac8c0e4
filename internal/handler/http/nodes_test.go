package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doAdmin routes req through the full middleware chain with an admin session.
func doAdmin(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestListNodes(t *testing.T) {
	nodes := &mockNodeService{
		listFn: func(_ context.Context, typeName string, params store.ListParams) (models.NodeList, error) {
			assert.Equal(t, "article", typeName)
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 5, params.Limit)
			assert.Equal(t, "hello", params.Search)
			return models.NodeList{
				Nodes:      []models.Node{{ID: 1, Type: "article"}},
				Pagination: models.Pagination{Total: 1, Page: 2, Limit: 5, TotalPages: 1},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/nodes?page=2&limit=5&search=hello", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestGetNode(t *testing.T) {
	nodes := &mockNodeService{
		getFn: func(_ context.Context, typeName, idOrSlug string) (models.Node, error) {
			assert.Equal(t, "article", typeName)
			assert.Equal(t, "5", idOrSlug)
			return models.Node{ID: 5, Type: "article", Data: map[string]any{"title": "T"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/nodes/5", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetNode_NotFound(t *testing.T) {
	nodes := &mockNodeService{
		getFn: func(_ context.Context, _, _ string) (models.Node, error) {
			return models.Node{}, store.ErrNodeNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/nodes/404", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestCreateNode(t *testing.T) {
	nodes := &mockNodeService{
		createFn: func(_ context.Context, typeName string, input schema.Values, authorID int64) (models.Node, error) {
			assert.Equal(t, "article", typeName)
			assert.Equal(t, "My Post", input["title"])
			assert.Equal(t, int64(7), authorID, "author should come from the token")
			return models.Node{ID: 1, Type: typeName, Data: input}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(7)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodPost, "/node-types/article/nodes", strings.NewReader(`{"title":"My Post"}`))
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
}

func TestCreateNode_ValidationFailure(t *testing.T) {
	nodes := &mockNodeService{
		createFn: func(_ context.Context, _ string, _ schema.Values, _ int64) (models.Node, error) {
			return models.Node{}, service.NewValidationError([]string{`field "title" is required`})
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodPost, "/node-types/article/nodes", strings.NewReader(`{}`))
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "title")
}

func TestUpdateNode(t *testing.T) {
	nodes := &mockNodeService{
		updateFn: func(_ context.Context, typeName string, id int64, input schema.Values) (models.Node, error) {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, "New", input["title"])
			return models.Node{ID: id, Type: typeName, Data: input}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodPut, "/node-types/article/nodes/5", strings.NewReader(`{"title":"New"}`))
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateNode_BadID(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: &mockNodeService{},
	})

	req := httptest.NewRequest(http.MethodPut, "/node-types/article/nodes/abc", strings.NewReader(`{}`))
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteNode(t *testing.T) {
	nodes := &mockNodeService{
		deleteFn: func(_ context.Context, typeName string, id int64) error {
			assert.Equal(t, "article", typeName)
			assert.Equal(t, int64(5), id)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodDelete, "/node-types/article/nodes/5", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteNode_NotFound(t *testing.T) {
	nodes := &mockNodeService{
		deleteFn: func(_ context.Context, _ string, _ int64) error {
			return store.ErrNodeNotFound
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		NodeService: nodes,
	})

	req := httptest.NewRequest(http.MethodDelete, "/node-types/article/nodes/404", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNodeTypeFields(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/fields", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Type   string         `json:"type"`
			Fields []schema.Field `json:"fields"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "article", resp.Data.Type)
	assert.Len(t, resp.Data.Fields, 2)
}

func TestGetNodeTypeFields_Unknown(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/ghost/fields", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNodeTypeForm(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/form", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `name="title"`)
}

func TestAdminRoutes_RequireAuth(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/nodes", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_RejectNonAdmin(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 2, Role: string(models.RoleUser)}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/node-types/article/nodes", nil)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}
