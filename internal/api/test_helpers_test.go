package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/handover-labs/handover/internal/api/shared"
	"github.com/handover-labs/handover/internal/domain"
)

// mockUserService implements service.UserService with function fields.
type mockUserService struct {
	RegisterFn      func(ctx context.Context, username, password string) (*domain.User, error)
	LoginFn         func(ctx context.Context, username, password string) (string, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return m.RegisterFn(ctx, username, password)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (string, error) {
	return m.LoginFn(ctx, username, password)
}

func (m *mockUserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFn(ctx, username)
}

// mockItemService implements service.ItemService with function fields.
type mockItemService struct {
	ListItemsFn  func(ctx context.Context, owner *domain.User) ([]*domain.Item, error)
	CreateItemFn func(ctx context.Context, owner *domain.User, name string) (*domain.Item, error)
	DeleteItemFn func(ctx context.Context, user *domain.User, itemID int64) (*domain.Item, error)
}

func (m *mockItemService) ListItems(ctx context.Context, owner *domain.User) ([]*domain.Item, error) {
	return m.ListItemsFn(ctx, owner)
}

func (m *mockItemService) CreateItem(ctx context.Context, owner *domain.User, name string) (*domain.Item, error) {
	return m.CreateItemFn(ctx, owner, name)
}

func (m *mockItemService) DeleteItem(ctx context.Context, user *domain.User, itemID int64) (*domain.Item, error) {
	return m.DeleteItemFn(ctx, user, itemID)
}

// mockTransferService implements service.TransferService with function fields.
type mockTransferService struct {
	ProposeFn func(ctx context.Context, sender *domain.User, itemID int64, recipientUsername string) (string, error)
	RedeemFn  func(ctx context.Context, recipient *domain.User, token string) (*domain.Item, error)
}

func (m *mockTransferService) Propose(
	ctx context.Context,
	sender *domain.User,
	itemID int64,
	recipientUsername string,
) (string, error) {
	return m.ProposeFn(ctx, sender, itemID, recipientUsername)
}

func (m *mockTransferService) Redeem(
	ctx context.Context,
	recipient *domain.User,
	token string,
) (*domain.Item, error) {
	return m.RedeemFn(ctx, recipient, token)
}

// withUser returns a copy of the request carrying user in its context, the
// way the authentication middleware does for protected routes.
func withUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
	return r.WithContext(ctx)
}

// decodeBody unmarshals the recorded response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}

// errorMessage extracts the error field from a recorded error response.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp shared.ErrorResponse
	decodeBody(t, rec, &resp)
	return resp.Error
}
