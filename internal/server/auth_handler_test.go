package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler() *AuthHandler {
	svc, _ := newTestUserService()
	return NewAuthHandler(svc, newTestJWTService())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_RegisterIssuesToken(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestAuthHandler_RegisterInvalidEmail(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_RegisterDuplicateConflict(t *testing.T) {
	h := newTestAuthHandler()
	body := types.RegisterRequest{Email: "jane@example.com", Password: "password123"}

	first := postJSON(t, h.Register, "/auth/register", body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, h.Register, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestAuthHandler_RegisterMalformedBody(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginRoundTrip(t *testing.T) {
	h := newTestAuthHandler()
	register := postJSON(t, h.Register, "/auth/register", types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, register.Code)

	rec := postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
