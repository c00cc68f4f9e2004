//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/resource-registry/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/resource-registry/internal/app"
	authpkg "github.com/heartmarshall/resource-registry/internal/auth"
	"github.com/heartmarshall/resource-registry/internal/config"
	"github.com/heartmarshall/resource-registry/internal/transport/middleware"
)

const (
	jwtSecret      = "test-secret-at-least-32-chars-long!!"
	jwtIssuer      = "test-issuer"
	identityHeader = "X-Auth-Request-User-Id"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{MaxBodyBytes: 1 << 20},
		Database: config.DatabaseConfig{LockTimeout: 2 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			IdentityHeader: identityHeader,
			TokenTTL:       15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Request-Id,X-Auth-Request-User-Id",
			MaxAge:         600,
		},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMinute: 6000, Burst: 1000},
		Resources: config.ResourcesConfig{DefaultPageSize: 10, MaxPageSize: 100, HistoryLimit: 50},
		Audit:     config.AuditConfig{RetentionDays: 365},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// do sends a request as actor (via the identity header) unless actor is
// uuid.Nil. body is JSON-encoded unless it is already a string.
func (ts *testServer) do(t *testing.T, method, path string, body any, actor uuid.UUID) *http.Response {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != uuid.Nil {
		req.Header.Set(identityHeader, actor.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// token issues a bearer token for userID.
func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := ts.jwt.GenerateToken(userID)
	require.NoError(t, err)
	return tok
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

type envelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

type resourceJSON struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	OwnerID           string  `json:"ownerId"`
	ManagementGroupID *string `json:"managementGroupId"`
	CreatedAt         int64   `json:"createdAt"`
	CreatedBy         string  `json:"createdBy"`
	UpdatedAt         int64   `json:"updatedAt"`
	UpdatedBy         string  `json:"updatedBy"`
}

type pageJSON struct {
	Data []resourceJSON `json:"data"`
	Next *string        `json:"next"`
}

type historyJSON struct {
	Data []struct {
		ID      string         `json:"id"`
		Key     string         `json:"key"`
		ActorID string         `json:"actorId"`
		Action  string         `json:"action"`
		Changes map[string]any `json:"changes"`
	} `json:"data"`
}

func newResourceBody(key, name string, owner uuid.UUID) map[string]any {
	return map[string]any{"key": key, "name": name, "ownerId": owner.String()}
}
