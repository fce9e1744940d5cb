package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketraut16/edulike-sub001/internal/config"
)

// signToken signs a token the way the backend auth service does; token
// issuance lives there, so tests sign their own.
func signToken(t *testing.T, secret, userID, email, role string) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "edulike-api",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func newContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJWTMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	Init("test-secret")
	tok := signToken(t, "test-secret", "u1", "u1@example.com", "admin")

	c, _ := newContext(t, "Bearer "+tok)
	called := false
	h := JWTMiddleware()(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(c))
	assert.True(t, called)

	claims := GetClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, tok, GetBearer(c))
}

func TestJWTMiddlewareRejectsWrongSecret(t *testing.T) {
	Init("test-secret")
	tok := signToken(t, "some-other-secret", "u1", "u1@example.com", "admin")

	c, rec := newContext(t, "Bearer "+tok)
	h := JWTMiddleware()(func(c echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	Init("test-secret")
	c, rec := newContext(t, "")
	h := JWTMiddleware()(func(c echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareRejectsAllWhenUninitialized(t *testing.T) {
	Init("")
	tok := signToken(t, "", "u1", "u1@example.com", "admin")

	c, rec := newContext(t, "Bearer "+tok)
	h := JWTMiddleware()(func(c echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTryGetClaimsInvalidTokenIsNil(t *testing.T) {
	Init("test-secret")
	c, _ := newContext(t, "Bearer not-a-token")
	assert.Nil(t, TryGetClaimsFromAuthHeader(c))
}

func TestAdminOnly(t *testing.T) {
	Init("test-secret")
	tok := signToken(t, "test-secret", "u2", "u2@example.com", "student")

	c, rec := newContext(t, "Bearer "+tok)
	h := JWTMiddleware()(AdminOnly(func(c echo.Context) error { return nil }))

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// Mirrors the startup order in cmd/app: .env loaded first, then config, then
// Init. A secret supplied only through .env must reach the verifier, and the
// dev default must no longer be accepted.
func TestDotenvSecretReachesVerifier(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=secret-from-dotenv\n"), 0o600))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("JWT_SECRET", "placeholder") // registers restore
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	require.NoError(t, godotenv.Load())
	cfg := config.Load()
	Init(cfg.JWTSecret)

	c, _ := newContext(t, "Bearer "+signToken(t, "secret-from-dotenv", "u1", "u1@example.com", "admin"))
	called := false
	h := JWTMiddleware()(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	assert.True(t, called, "a .env-sourced secret must be honored")

	c, rec := newContext(t, "Bearer "+signToken(t, "dev-secret-please-change", "u1", "u1@example.com", "admin"))
	require.NoError(t, JWTMiddleware()(func(c echo.Context) error { return nil })(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "the dev default must not verify once a secret is configured")
}
