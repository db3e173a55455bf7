package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoga-studio/front/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSeededServer(t *testing.T) *Server {
	t.Helper()
	srv := New(Options{JWTSecret: "test-secret", TokenTTL: time.Hour})
	f, err := DefaultFixture()
	require.NoError(t, err)
	require.NoError(t, srv.Seed(context.Background(), f))
	return srv
}

func do(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func login(t *testing.T, srv *Server, email, password string) models.SessionInformation {
	t.Helper()
	w := do(t, srv, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var info models.SessionInformation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	return info
}

func TestLogin(t *testing.T) {
	srv := newSeededServer(t)

	info := login(t, srv, "yoga@studio.com", "test!12345")
	assert.Equal(t, "Bearer", info.Type)
	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "yoga@studio.com", info.Username)
	assert.True(t, info.Admin)
	assert.NotEmpty(t, info.Token)

	w := do(t, srv, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "yoga@studio.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, srv, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "nobody@studio.com", Password: "test!12345"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister(t *testing.T) {
	srv := newSeededServer(t)
	req := models.RegisterRequest{Email: "new@studio.com", FirstName: "New", LastName: "User", Password: "secret"}

	w := do(t, srv, http.MethodPost, "/api/auth/register", "", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User registered successfully!"}`, w.Body.String())

	w = do(t, srv, http.MethodPost, "/api/auth/register", "", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Error: Email is already taken!"}`, w.Body.String())

	info := login(t, srv, "new@studio.com", "secret")
	assert.False(t, info.Admin)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	srv := newSeededServer(t)

	for _, path := range []string{"/api/session", "/api/teacher", "/api/user/1"} {
		w := do(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := do(t, srv, http.MethodGet, "/api/session", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := NewTokenIssuer("another-secret", time.Hour)
	forged, err := other.Issue(1, "yoga@studio.com")
	require.NoError(t, err)
	w = do(t, srv, http.MethodGet, "/api/session", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionEndpoints(t *testing.T) {
	srv := newSeededServer(t)
	token := login(t, srv, "yoga@studio.com", "test!12345").Token

	w := do(t, srv, http.MethodGet, "/api/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 2)

	date, _ := models.ParseTimestamp("2024-10-01")
	w = do(t, srv, http.MethodPost, "/api/session", token, models.Session{Name: "Une session", Description: "d", Date: date, TeacherID: 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, int64(1), created.TeacherID)
	assert.NotNil(t, created.CreatedAt)

	w = do(t, srv, http.MethodPut, "/api/session/3", token, models.Session{Name: "Renamed", Date: date, TeacherID: 2})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, srv, http.MethodGet, "/api/session/3", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Renamed", got.Name)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/session/abc", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/session/42", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPut, "/api/session/42", token, models.Session{}).Code)

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodDelete, "/api/session/3", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/api/session/3", token, nil).Code)
}

func TestParticipation(t *testing.T) {
	srv := newSeededServer(t)
	token := login(t, srv, "toto3@toto.com", "test!1234").Token

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/api/session/1/participate/4", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/session/1/participate/4", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/api/session/1/participate/99", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/api/session/99/participate/4", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/session/1/participate/x", token, nil).Code)

	w := do(t, srv, http.MethodGet, "/api/session/1", token, nil)
	var s models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, []int64{4}, s.Users)

	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodDelete, "/api/session/1/participate/4", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodDelete, "/api/session/1/participate/4", token, nil).Code)
}

func TestTeacherAndUserEndpoints(t *testing.T) {
	srv := newSeededServer(t)
	token := login(t, srv, "toto3@toto.com", "test!1234").Token

	w := do(t, srv, http.MethodGet, "/api/teacher", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var teachers []models.Teacher
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teachers))
	require.Len(t, teachers, 2)
	assert.Equal(t, "Margot DELAHAYE", teachers[0].DisplayName())
	assert.Equal(t, "Hélène THIERCELIN", teachers[1].DisplayName())
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/teacher/9", token, nil).Code)

	w = do(t, srv, http.MethodGet, "/api/user/4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "PasswordHash")
	assert.NotContains(t, w.Body.String(), `"password"`)
	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "toto3@toto.com", user.Email)

	// someone else's account
	assert.Equal(t, http.StatusUnauthorized, do(t, srv, http.MethodDelete, "/api/user/1", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/api/user/99", token, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, srv, http.MethodDelete, "/api/user/4", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/api/user/4", token, nil).Code)
}

func TestRequestsAreRecorded(t *testing.T) {
	srv := newSeededServer(t)
	token := login(t, srv, "yoga@studio.com", "test!12345").Token
	do(t, srv, http.MethodDelete, "/api/session/1", token, nil)

	assert.Equal(t, []string{"POST /api/auth/login", "DELETE /api/session/1"}, srv.Requests())
	srv.ResetRequests()
	assert.Empty(t, srv.Requests())
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.Issue(4, "toto3@toto.com")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(4), claims.UserID)
	assert.Equal(t, "toto3@toto.com", claims.Subject)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(token)
	assert.Error(t, err, "expired token")
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture("")
	require.NoError(t, err)
	assert.Len(t, f.Teachers, 2)
	assert.Len(t, f.Sessions, 2)
	assert.Equal(t, "yoga@studio.com", f.Users[0].Email)

	_, err = LoadFixture("does-not-exist.yaml")
	assert.Error(t, err)

	_, err = ParseFixture([]byte("users: [unclosed"))
	assert.Error(t, err)
}
