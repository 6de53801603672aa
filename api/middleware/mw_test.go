package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cristiano1098/socializeAPP/internal/authn"
	"github.com/golang-jwt/jwt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusCounter struct {
	statuses []int
}

func (s *statusCounter) RecordHTTPStatus(code int) { s.statuses = append(s.statuses, code) }
func (s *statusCounter) RecordProjectionLoad(int)  {}
func (s *statusCounter) RecordPublishFailure()     {}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_InvalidBearerToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Add("Authorization", "Bearer invalid-token")

	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Add("Authorization", "Basic dXNlcjpwYXNz")

	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware_ClaimsPopulated(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, authn.Claims{Email: "ana@example.com"}).
		SignedString([]byte("key"))
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsKey).(authn.Claims)
		require.True(t, ok)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, token, r.Context().Value(TokenKey))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Add("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	JWTMiddleware(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithLogger_AttachesLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())
		assert.NotEqual(t, zerolog.Disabled, logger.GetLevel())
	})

	WithLogger(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))
}

func TestWithMetrics_RecordsStatus(t *testing.T) {
	rec := &statusCounter{}
	mw := WithMetrics(rec)

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/a", nil))

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/b", nil))

	assert.Equal(t, []int{http.StatusNotFound, http.StatusOK}, rec.statuses)
}
