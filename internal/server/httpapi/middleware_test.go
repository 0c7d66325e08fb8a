package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/logging"
	"taskdeck/internal/server/auth"
	"taskdeck/internal/server/models"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, us UserProvider, ts TaskProvider) *Server {
	t.Helper()
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", l, us, ts, testSecret)
}

type captureTasks struct {
	TaskProvider
	lastOwner string
}

func (f *captureTasks) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	f.lastOwner = ownerID
	return []*models.Task{}, nil
}

func issueTestToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte(testSecret), ttl)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	srv := newTestServer(t, nil, &captureTasks{})
	app := srv.newApp()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "missing credentials")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	srv := newTestServer(t, nil, &captureTasks{})
	app := srv.newApp()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	srv := newTestServer(t, nil, &captureTasks{})
	app := srv.newApp()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	srv := newTestServer(t, nil, &captureTasks{})
	app := srv.newApp()

	tok := issueTestToken(t, "u-1", -time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "token expired")
}

func TestAuthMiddleware_ValidTokenInjectsIdentity(t *testing.T) {
	tasks := &captureTasks{}
	srv := newTestServer(t, nil, tasks)
	app := srv.newApp()

	tok := issueTestToken(t, "user-42", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-42", tasks.lastOwner, "handler must see the identity from the token")
}
