package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-be/internal/bootstrap"
	"portfolio-be/internal/config"
	"portfolio-be/internal/editor"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/repository/memory"
	"portfolio-be/internal/server"
	"portfolio-be/internal/testfixtures"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app       *fiber.App
	container *bootstrap.Container
	cfg       *config.Config
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			BaseURL:            "http://localhost:3000",
			Environment:        "test",
			CorsAllowedOrigins: "http://localhost:5173",
			StaticDir:          t.TempDir(),
		},
		Store: config.StoreConfig{Driver: "memory"},
		Admin: config.AdminConfig{
			Password:    "admin123",
			JWTSecret:   "integration_secret",
			UserID:      "1",
			Login:       "charchitd",
			DisplayName: "Charchit Dhawan",
			AvatarURL:   "/images/hero_portrait.jpg",
		},
		OAuth: config.OAuthConfig{
			GitHubClientID: "client-id",
			RedirectURL:    "http://localhost:3000/admin/callback",
			GitHubAPIURL:   "http://127.0.0.1:1",
		},
		Contact: config.ContactConfig{
			FormEndpoint: "http://127.0.0.1:1",
			OwnerEmail:   "owner@example.com",
		},
		Events: config.EventsConfig{ContentTopic: "CONTENT_SAVED"},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	clock := testfixtures.NewClock(testfixtures.ReferenceTime())
	container, err := bootstrap.NewContainer(cfg, memory.NewKeyValueRepository(), logger.NewNopLogger(), bootstrap.Options{
		HTTPClient:  http.DefaultClient,
		InboxLogger: logger.NewNopLogger(),
		EditorOptions: []editor.Option{
			editor.WithIDGenerator(testfixtures.NewIDGenerator("rec").NextFunc()),
			editor.WithClock(clock.NowFunc()),
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, container.ConsumerService.Consume(ctx))

	srv := server.New(cfg, container)
	return &testEnv{app: srv.GetApp(), container: container, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) serverutils.BaseResponse[T] {
	t.Helper()
	defer resp.Body.Close()

	var out serverutils.BaseResponse[T]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
