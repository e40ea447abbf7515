package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/auth"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

// stubResolver fakes the credential store with an in-memory map.
type stubResolver struct {
	users map[string]*models.User
}

func (s *stubResolver) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func newAuthRouter(t *testing.T, tokens *auth.TokenService, users UserResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(tokens, users), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentUser(c))
	})
	r.POST("/gated", RequireAuth(tokens, users), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func fixtureStore() *stubResolver {
	return &stubResolver{users: map[string]*models.User{
		"admin@depot.example": {ID: 1, FirstName: "Ada", LastName: "Admin", Email: "admin@depot.example", IsAdmin: true},
		"clerk@depot.example": {ID: 2, FirstName: "Carl", LastName: "Clerk", Email: "clerk@depot.example"},
	}}
}

func doRequest(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, fixtureStore())

	w := doRequest(r, http.MethodGet, "/whoami", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, fixtureStore())

	w := doRequest(r, http.MethodGet, "/whoami", "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthDeletedSubject(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, fixtureStore())

	token, err := tokens.Issue("ghost@depot.example")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := doRequest(r, http.MethodGet, "/whoami", token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

// The 401 body must not reveal which check failed.
func TestUniform401Body(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, fixtureStore())

	ghost, _ := tokens.Issue("ghost@depot.example")
	bodies := map[string]string{}
	for name, bearer := range map[string]string{
		"missing": "",
		"garbage": "junk.token.here",
		"ghost":   ghost,
	} {
		w := doRequest(r, http.MethodGet, "/whoami", bearer)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, w.Code)
		}
		bodies[name] = w.Body.String()
	}
	if bodies["missing"] != bodies["garbage"] || bodies["garbage"] != bodies["ghost"] {
		t.Fatalf("401 bodies differ by cause: %v", bodies)
	}
}

// brokenResolver simulates the credential store being unreachable.
type brokenResolver struct{}

func (brokenResolver) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5432: connection refused")
}

// A store outage must surface as 500, not masquerade as a bad credential.
func TestRequireAuthStoreOutageIs500(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, brokenResolver{})

	token, err := tokens.Issue("admin@depot.example")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := doRequest(r, http.MethodGet, "/whoami", token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newAuthRouter(t, tokens, fixtureStore())

	clerkToken, err := tokens.Issue("clerk@depot.example")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := doRequest(r, http.MethodPost, "/gated", clerkToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin status = %d, want 403", w.Code)
	}

	adminToken, err := tokens.Issue("admin@depot.example")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w = doRequest(r, http.MethodPost, "/gated", adminToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin status = %d, want 201", w.Code)
	}
}

func TestWhoamiNeverLeaksPasswordHash(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	store := fixtureStore()
	store.users["admin@depot.example"].Password = "$2a$10$fakehash"
	r := newAuthRouter(t, tokens, store)

	token, _ := tokens.Issue("admin@depot.example")
	w := doRequest(r, http.MethodGet, "/whoami", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, leaked := payload["password"]; leaked {
		t.Fatal("password field present in response")
	}
}
