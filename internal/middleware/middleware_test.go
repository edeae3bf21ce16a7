package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
	"github.com/rabbinur71/quickbite-frontend/internal/auth"
	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
)

var testSecret = []byte("test-secret-key-for-testing-only")

func sessionRouter() *gin.Engine {
	router := gin.New()
	router.Use(Session(testSecret))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessionID": SessionID(c)})
	})
	return router
}

// TestSession_MintsCookieForNewVisitor checks a fresh browser gets a session
func TestSession_MintsCookieForNewVisitor(t *testing.T) {
	router := sessionRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("no session cookie set")
	}

	sid, err := parseSession(testSecret, cookie.Value)
	if err != nil {
		t.Fatalf("minted cookie does not verify: %v", err)
	}
	if sid == "" {
		t.Fatal("empty session id in cookie")
	}
}

// TestSession_KeepsExistingSession checks the same cookie maps to the same ID
func TestSession_KeepsExistingSession(t *testing.T) {
	router := sessionRouter()

	signed, err := signSession(testSecret, "fixed-session-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signed})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if want := "fixed-session-id"; !strings.Contains(body, want) {
		t.Errorf("expected session %q in response, got %s", want, body)
	}
}

// TestSession_TamperedCookieGetsFreshSession checks forged cookies are ignored
func TestSession_TamperedCookieGetsFreshSession(t *testing.T) {
	router := sessionRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged.token.value"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	found := false
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "forged.token.value" {
			found = true
		}
	}
	if !found {
		t.Fatal("forged cookie was not replaced")
	}
}

// TestRequireAdmin_Unauthenticated checks the guard rejects anonymous calls
func TestRequireAdmin_Unauthenticated(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", localstore.NewMemoryStore())
	session := auth.NewSession(client)

	router := gin.New()
	router.Use(RequireAdmin(session))
	router.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
