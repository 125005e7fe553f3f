package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

const testSecret = "segredo-de-teste"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "painel",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		path           string
		authorization  func(t *testing.T) string
		expectedStatus int
	}{
		{
			name:           "Sem segredo tudo é liberado",
			secret:         "",
			path:           "/api/campaigns/manage",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Rota pública dispensa token",
			secret:         testSecret,
			path:           "/health",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Arquivo estático dispensa token",
			secret:         testSecret,
			path:           "/static/js/app.js",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem cabeçalho Authorization",
			secret:         testSecret,
			path:           "/api",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Cabeçalho sem Bearer",
			secret: testSecret,
			path:   "/api",
			authorization: func(t *testing.T) string {
				return "Basic abc"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			secret: testSecret,
			path:   "/api",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, time.Now().Add(time.Hour))
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "Token assinado com outro segredo",
			secret: testSecret,
			path:   "/api",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, "outro", time.Now().Add(time.Hour))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			secret: testSecret,
			path:   "/api",
			authorization: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, time.Now().Add(-time.Hour))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != nil {
				req.Header.Set("Authorization", tt.authorization(t))
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.secret)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_ClaimsInContext(t *testing.T) {
	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		subject = claims.Subject
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))

	AuthMiddleware(testSecret)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "painel", subject)
}

func TestAuthMiddleware_ExpiredCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(-time.Minute)))
	rec := httptest.NewRecorder()

	AuthMiddleware(testSecret)(okHandler()).ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
}

func TestCors(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		origin        string
		method        string
		expectedAllow string
		expectedCode  int
	}{
		{
			name:          "Origem permitida",
			allowed:       []string{"http://localhost:3000", " https://painel.exemplo.com "},
			origin:        "https://painel.exemplo.com",
			method:        http.MethodGet,
			expectedAllow: "https://painel.exemplo.com",
			expectedCode:  http.StatusNoContent,
		},
		{
			name:         "Origem não permitida",
			allowed:      []string{"http://localhost:3000"},
			origin:       "https://malicioso.exemplo.com",
			method:       http.MethodGet,
			expectedCode: http.StatusNoContent,
		},
		{
			name:          "Curinga libera qualquer origem",
			allowed:       []string{"*"},
			origin:        "https://qualquer.exemplo.com",
			method:        http.MethodGet,
			expectedAllow: "https://qualquer.exemplo.com",
			expectedCode:  http.StatusNoContent,
		},
		{
			name:          "Preflight responde sem chamar o handler",
			allowed:       []string{"http://localhost:3000"},
			origin:        "http://localhost:3000",
			method:        http.MethodOptions,
			expectedAllow: "http://localhost:3000",
			expectedCode:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()

	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dash/metrics", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
