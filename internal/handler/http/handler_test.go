package http

import (
	"context"
	"io"
	"testing"

	"github.com/fieldpress/fieldpress/internal/forms"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/registry"
	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, username, email, password string) (models.User, error)
	loginFn       func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	return m.registerFn(ctx, username, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) EnsureAdmin(_ context.Context) error {
	return nil
}

// ─────────────────────────────────────────────
// Mock NodeService
// ─────────────────────────────────────────────

type mockNodeService struct {
	listFn   func(ctx context.Context, typeName string, params store.ListParams) (models.NodeList, error)
	getFn    func(ctx context.Context, typeName, idOrSlug string) (models.Node, error)
	createFn func(ctx context.Context, typeName string, input schema.Values, authorID int64) (models.Node, error)
	updateFn func(ctx context.Context, typeName string, id int64, input schema.Values) (models.Node, error)
	deleteFn func(ctx context.Context, typeName string, id int64) error
}

func (m *mockNodeService) List(ctx context.Context, typeName string, params store.ListParams) (models.NodeList, error) {
	return m.listFn(ctx, typeName, params)
}

func (m *mockNodeService) Get(ctx context.Context, typeName, idOrSlug string) (models.Node, error) {
	return m.getFn(ctx, typeName, idOrSlug)
}

func (m *mockNodeService) Create(ctx context.Context, typeName string, input schema.Values, authorID int64) (models.Node, error) {
	return m.createFn(ctx, typeName, input, authorID)
}

func (m *mockNodeService) Update(ctx context.Context, typeName string, id int64, input schema.Values) (models.Node, error) {
	return m.updateFn(ctx, typeName, id, input)
}

func (m *mockNodeService) Delete(ctx context.Context, typeName string, id int64) error {
	return m.deleteFn(ctx, typeName, id)
}

// ─────────────────────────────────────────────
// Mock ResolveService
// ─────────────────────────────────────────────

type mockResolveService struct {
	resolveFn func(ctx context.Context, segments []string) (models.ResolvedNode, error)
	nodeURLFn func(ctx context.Context, typeName string, id int64) (string, error)
}

func (m *mockResolveService) Resolve(ctx context.Context, segments []string) (models.ResolvedNode, error) {
	return m.resolveFn(ctx, segments)
}

func (m *mockResolveService) NodeURL(ctx context.Context, typeName string, id int64) (string, error) {
	return m.nodeURLFn(ctx, typeName, id)
}

// ─────────────────────────────────────────────
// Mock MediaStore
// ─────────────────────────────────────────────

type mockMediaStore struct {
	saveFn   func(ctx context.Context, fileName string, r io.Reader) (string, error)
	removeFn func(ctx context.Context, storedName string) error
}

func (m *mockMediaStore) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	return m.saveFn(ctx, fileName, r)
}

func (m *mockMediaStore) Remove(ctx context.Context, storedName string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, storedName)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testRegistry declares a minimal article type for routing and form tests.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	require.NoError(t, reg.RegisterBlockType(registry.BlockType{
		Name:        "rich-text",
		DisplayName: "Rich Text",
		Fields: []schema.Field{
			{Name: "content", Type: schema.TypeTextarea},
		},
	}))
	require.NoError(t, reg.RegisterNodeType(registry.NodeType{
		Name:     "article",
		Settings: registry.NodeSettings{Subpath: "blog", TitleField: "title"},
		Fields: []schema.Field{
			{Name: "title", Type: schema.TypeText, Validation: &schema.Validation{Required: true}},
			{Name: "slug", Type: schema.TypeSlug},
		},
	}))
	return reg
}

// newTestHandler builds a Handler over mock services and the test registry.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	reg := testRegistry(t)
	renderer, err := forms.NewRenderer(reg)
	require.NoError(t, err)

	return NewHandler(svcs, reg, renderer, logger.Nop())
}

// adminToken makes ParseToken accept any bearer string as an admin session.
func adminToken(userID int64) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: userID, Role: string(models.RoleAdmin)}, nil
	}
}
