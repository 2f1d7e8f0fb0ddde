package handlers_test

import (
	"Corexus/internal/config"
	"Corexus/internal/frontend"
	"Corexus/internal/handlers"
	"Corexus/internal/middleware"
	"Corexus/internal/model"
	"Corexus/internal/repo"
	"Corexus/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// --- Helpers ---
func newTestConfig() *config.Config {
	return &config.Config{
		AuthSecret:  testSecret,
		TokenTTL:    30 * time.Minute,
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func newTestRouter(t *testing.T, ur repo.UserRepository) http.Handler {
	t.Helper()
	logger := zap.NewNop().Sugar()
	userSvc := service.NewUserService(ur)
	h := handlers.NewHandler(userSvc, logger, newTestConfig())
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	tok, err := middleware.NewToken(userID, "user@corexus.net", testSecret, time.Minute)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: frontend.TokenKey, Value: tok})
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
