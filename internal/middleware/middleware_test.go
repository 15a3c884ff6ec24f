package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"confighub/internal/domain"
	"confighub/internal/domain/models"
	"confighub/internal/httputil"
	"confighub/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	valid string
}

func (v stubVerifier) VerifyToken(token string) (*models.IdentityClaims, error) {
	if token != v.valid {
		return nil, domain.ErrUnauthorized
	}
	claims := &models.IdentityClaims{Email: "ada@example.com"}
	claims.Subject = "user-1"
	return claims, nil
}

func (stubVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoUser writes the authenticated subject as the body
var echoUser = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(httputil.GetUserID(r)))
})

func TestAuthMiddleware(t *testing.T) {
	handler := AuthMiddleware(stubVerifier{valid: "good"}, discardLogger(), "/health")(echoUser)

	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "valid token", method: http.MethodGet, path: "/api/folders", header: "Bearer good", wantCode: http.StatusOK, wantBody: "user-1"},
		{name: "missing header", method: http.MethodGet, path: "/api/folders", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", method: http.MethodGet, path: "/api/folders", header: "Basic good", wantCode: http.StatusUnauthorized},
		{name: "empty token", method: http.MethodGet, path: "/api/folders", header: "Bearer  ", wantCode: http.StatusUnauthorized},
		{name: "invalid token", method: http.MethodGet, path: "/api/folders", header: "Bearer bad", wantCode: http.StatusUnauthorized},
		{name: "exempt path", method: http.MethodGet, path: "/health", wantCode: http.StatusOK, wantBody: ""},
		{name: "preflight", method: http.MethodOptions, path: "/api/folders", wantCode: http.StatusOK, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()

	require.NotPanics(t, func() {
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	handler := Metrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/a", "/b", "/missing"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, promtest.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "404")))
}
