package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey  = "test-api-key"
	testSecret  = "test-secret"
	testUserID  = "alice"
	testVersion = "test-version"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices builds real in-memory services seeded for alice.
func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	services, err := service.NewServices(config.DevServerConfig{
		Address:    "localhost:0",
		APIKey:     testAPIKey,
		Secret:     testSecret,
		DemoUserID: testUserID,
		TokenTTL:   time.Hour,
	}, models.NewAppBuildInfo(testVersion, "", ""), logger.Nop())
	require.NoError(t, err)

	return services
}

func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, logger.Nop())
}

// newTestRouter returns the full router over real services and a token for
// alice.
func newTestRouter(t *testing.T) (http.Handler, *service.Services, string) {
	t.Helper()

	services := newTestServices(t)
	token, err := services.AuthService.CreateToken(context.Background(), testUserID)
	require.NoError(t, err)

	return NewHandler(services, logger.Nop()).Init(), services, token
}

// doRequest sends an authenticated JSON request through router.
func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload string
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		payload = string(b)
	}

	target := path
	if !strings.Contains(path, "?") {
		target = path + "?" + url.Values{apiKeyParam: {testAPIKey}}.Encode()
	}

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
		req.Header.Set(authTypeHeader, authTypeJWT)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr), rr.Body.String())
	return apiErr
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_Health(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, testVersion, body["version"])
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_RegisteredRoutes(t *testing.T) {
	router, _, token := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"query channels", http.MethodPost, "/channels", models.QueryChannelsRequest{}, http.StatusCreated},
		{"send message", http.MethodPost, "/channels/messaging/general/message", models.SendMessageRequest{Message: models.Message{Text: "hi"}}, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, token, tt.body)
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	router, _, token := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/health"},
		{http.MethodGet, "/channels"},
		{http.MethodDelete, "/channels/messaging/general/message"},
		{http.MethodPost, "/connect"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, token, nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, codeDoesNotExist, decodeAPIError(t, rr).Code)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	router, _, token := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/nope", token, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	apiErr := decodeAPIError(t, rr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
