package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_NoHeaderPassesThrough(t *testing.T) {
	var hit bool
	h := AuthMiddleware(okHandler(&hit))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/query", nil))

	assert.True(t, hit)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_InvalidTokenPassesThroughAnonymously(t *testing.T) {
	var gotUID any
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID = r.Context().Value(UserIDKey)
	}))

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, gotUID)
}

func TestAuthMiddleware_ValidTokenSetsContext(t *testing.T) {
	os.Setenv("SECRET_KEY", "test-secret")
	jwtKey = []byte("test-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-1",
		"role":    "ADMIN",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	var gotUID any
	var gotClaims any
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID = r.Context().Value(UserIDKey)
		gotClaims = r.Context().Value(TokenClaimsKey)
	}))

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "user-1", gotUID)
	require.NotNil(t, gotClaims)
}

func TestRateLimitMiddleware_StrictTierThrottles(t *testing.T) {
	var hits int
	h := RateLimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	var lastRec *httptest.ResponseRecorder
	for i := 0; i < burstStrict+3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/query", nil)
		req.Header.Set("X-Action", "claim")
		req.Header.Set("X-Device-ID", "device-throttle-test")
		lastRec = httptest.NewRecorder()
		h.ServeHTTP(lastRec, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, lastRec.Code)
	assert.LessOrEqual(t, hits, burstStrict+1)

	// Rejections carry a JSON error body.
	assert.Equal(t, "application/json", lastRec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(lastRec.Body).Decode(&body))
	assert.Equal(t, "too many requests", body["error"])
}

func TestResolveRateTier(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	_, _, tier := resolveRateTier(req)
	assert.Equal(t, "general", tier)

	req.Header.Set("X-Action", "claim")
	_, _, tier = resolveRateTier(req)
	assert.Equal(t, "strict", tier)
}
