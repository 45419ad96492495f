package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSRouter(t *testing.T, enabled bool, origins string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if middleware := createCORSMiddleware(enabled, origins, logger); middleware != nil {
		router.Use(middleware)
	}
	router.GET("/v1/secrets", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})
	router.POST("/v1/secrets", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "disabled", enabled: false, origins: "https://example.com", wantNil: true},
		{name: "enabled without origins", enabled: true, origins: "", wantNil: true},
		{name: "only invalid origins", enabled: true, origins: "example.com, ftp://x", wantNil: true},
		{name: "comma separated", enabled: true, origins: "https://app.example.com,https://admin.example.com"},
		{name: "wildcard", enabled: true, origins: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, logger)
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantOrigins  []string
		wantRejected []string
	}{
		{name: "empty", input: ""},
		{
			name:        "trims whitespace and trailing slash",
			input:       " https://app.example.com/ , http://localhost:3000 ",
			wantOrigins: []string{"https://app.example.com", "http://localhost:3000"},
		},
		{
			name:         "rejects scheme-less origins",
			input:        "app.example.com,https://ok.example.com",
			wantOrigins:  []string{"https://ok.example.com"},
			wantRejected: []string{"app.example.com"},
		},
		{
			name:        "lone wildcard",
			input:       "*",
			wantOrigins: []string{"*"},
		},
		{
			name:         "wildcard mixed with explicit origins",
			input:        "*,https://app.example.com",
			wantOrigins:  []string{"https://app.example.com"},
			wantRejected: []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origins, rejected := parseOrigins(tt.input)
			assert.Equal(t, tt.wantOrigins, origins)
			assert.Equal(t, tt.wantRejected, rejected)
		})
	}
}

func TestCORSIntegration_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secrets", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSIntegration_DisallowedOrigin(t *testing.T) {
	router := newCORSRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secrets", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_NoHeadersWhenDisabled(t *testing.T) {
	router := newCORSRouter(t, false, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secrets", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIntegration_WildcardDisablesCredentials(t *testing.T) {
	router := newCORSRouter(t, true, "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secrets", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSIntegration_PreflightRequestHandled(t *testing.T) {
	router := newCORSRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/secrets", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.NotContains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
