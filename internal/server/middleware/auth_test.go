package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	userID uuid.UUID
	err    error
}

func (f *fakeValidator) ValidateToken(string) (uuid.UUID, error) {
	return f.userID, f.err
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	mw := Auth(&fakeValidator{userID: userID})

	var seenID uuid.UUID
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		seenID = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenID)
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(&fakeValidator{userID: uuid.New()})
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	mw := Auth(&fakeValidator{err: fmt.Errorf("bad token")})
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	token, ok := bearerToken("bearer abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	token, ok = bearerToken("Bearer abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}

func TestBearerToken_Malformed(t *testing.T) {
	_, ok := bearerToken("")
	assert.False(t, ok)

	_, ok = bearerToken("abc123")
	assert.False(t, ok)

	_, ok = bearerToken("Basic dXNlcjpwYXNz")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer one two")
	assert.False(t, ok)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)

	_, err := GetUserID(req)

	assert.Error(t, err)
}

func TestWithUserID(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req = req.WithContext(WithUserID(req.Context(), userID))

	got, err := GetUserID(req)

	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
