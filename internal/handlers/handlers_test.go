package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/LudyPitra/AI-Diary-App/internal/auth"
	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"
	"github.com/LudyPitra/AI-Diary-App/internal/dto"
	"github.com/LudyPitra/AI-Diary-App/internal/handlers"
	"github.com/LudyPitra/AI-Diary-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users  map[string]dom.User
	nextID int64
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, ok := m.users[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (m *memUserRepo) Create(ctx context.Context, email, passwordHash string) (dom.User, error) {
	m.nextID++
	u := dom.User{ID: m.nextID, Email: email, PasswordHash: passwordHash, IsActive: true, CreatedAt: time.Now()}
	m.users[email] = u
	return u, nil
}

type memEntryRepo struct {
	entries []dom.Entry
	nextID  int64
}

func (m *memEntryRepo) Create(ctx context.Context, e dom.Entry) (dom.Entry, error) {
	m.nextID++
	e.ID = m.nextID
	e.CreatedAt = time.Now()
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memEntryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.Entry, error) {
	var out []dom.Entry
	for _, e := range m.entries {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userSvc := service.NewUserService(&memUserRepo{users: map[string]dom.User{}})
	entrySvc := service.NewEntryService(&memEntryRepo{}, nil)
	tokens, err := auth.NewTokenManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	authHandler := handlers.NewAuthHandler(userSvc, entrySvc, tokens)
	entryHandler := handlers.NewEntryHandler(entrySvc)

	r := gin.New()
	r.POST("/users/", authHandler.Register)
	r.POST("/token", authHandler.Token)
	protected := r.Group("", auth.RequireToken(tokens, userSvc))
	protected.GET("/users/me", authHandler.Me)
	protected.GET("/entries", entryHandler.List)
	protected.POST("/entries/", entryHandler.Create)
	return r, tokens
}

func postJSON(r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, email, password string) dto.UserResponse {
	t.Helper()
	w := postJSON(r, "/users/", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var u dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return u
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := postForm(r, "/token", url.Values{"username": {email}, "password": {password}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
	return tok.AccessToken
}

func TestEndToEnd(t *testing.T) {
	r, _ := newTestRouter(t)

	u := register(t, r, "diarist@example.com", "s3cret!")
	require.NotZero(t, u.ID)
	require.Equal(t, "diarist@example.com", u.Email)
	require.True(t, u.IsActive)
	require.NotNil(t, u.Entries)
	require.Empty(t, u.Entries)

	token := login(t, r, "diarist@example.com", "s3cret!")

	w := get(r, "/entries", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())

	w = postJSON(r, "/entries/", `{"title":"Day 1","content":"Hello"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Day 1", created.Title)
	require.Equal(t, "Hello", created.Content)
	require.Equal(t, u.ID, created.OwnerID)
	require.False(t, created.CreatedAt.IsZero())

	w = get(r, "/entries", token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.EntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	w = get(r, "/users/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, u.ID, me.ID)
	require.Len(t, me.Entries, 1)
	require.Equal(t, "Day 1", me.Entries[0].Title)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "a@x.com", "pw")
	w := postJSON(r, "/users/", `{"email":"a@x.com","password":"other"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already registered")
}

func TestToken_InvalidCredentials(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "a@x.com", "pw")

	wrongPw := postForm(r, "/token", url.Values{"username": {"a@x.com"}, "password": {"wrong"}})
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)

	noUser := postForm(r, "/token", url.Values{"username": {"nouser@x.com"}, "password": {"anything"}})
	require.Equal(t, http.StatusUnauthorized, noUser.Code)

	// identical error body for absent account and wrong password
	require.JSONEq(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestEntries_RequireToken(t *testing.T) {
	r, tokens := newTestRouter(t)

	w := get(r, "/entries", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w = get(r, "/entries", "garbage")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// token references an account that was never registered
	tok, err := tokens.Issue("ghost@x.com")
	require.NoError(t, err)
	w = get(r, "/entries", tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEntries_ExpiredToken(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "a@x.com", "pw")
	expired, err := auth.NewTokenManager("test-secret", "HS256", -1*time.Minute)
	require.NoError(t, err)
	tok, err := expired.Issue("a@x.com")
	require.NoError(t, err)

	w := get(r, "/entries", tok)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEntries_ScopedToOwner(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "a@x.com", "pw")
	register(t, r, "b@x.com", "pw")
	tokenA := login(t, r, "a@x.com", "pw")
	tokenB := login(t, r, "b@x.com", "pw")

	w := postJSON(r, "/entries/", `{"title":"private"}`, tokenA)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/entries", tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestCreateEntry_TitleRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	register(t, r, "a@x.com", "pw")
	token := login(t, r, "a@x.com", "pw")

	w := postJSON(r, "/entries/", `{"content":"no title"}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
