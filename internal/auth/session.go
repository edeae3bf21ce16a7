package auth

import (
	"context"
	"sync"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
)

// Session is the single source of truth for "is an admin currently
// authenticated". It moves between three states: unauthenticated (no user),
// authenticating (login in flight) and authenticated (profile loaded).
// Its token lives in the durable store via the api client, so a restart
// re-validates rather than re-prompts.
type Session struct {
	mu             sync.Mutex
	client         *api.Client
	user           *User
	lastError      string
	authenticating bool
}

func NewSession(client *api.Client) *Session {
	return &Session{client: client}
}

// Bootstrap runs at startup: when a token is stored, validate it against the
// backend. A failure discards the token and leaves the session
// unauthenticated; it is never surfaced as an error.
func (s *Session) Bootstrap(ctx context.Context) {
	if s.client.Token(ctx) == "" {
		return
	}

	var payload struct {
		User User `json:"user"`
	}
	if err := s.client.Get(ctx, "/auth/me", "Failed to get user data", &payload); err != nil {
		_ = s.client.ClearToken(ctx)
		return
	}

	s.mu.Lock()
	s.user = &payload.User
	s.mu.Unlock()
}

// Login exchanges credentials for a token and profile. On success the token
// is persisted and the session becomes authenticated; on failure the error
// message is recorded and the state is unchanged.
func (s *Session) Login(ctx context.Context, email, password string) Result {
	s.mu.Lock()
	s.authenticating = true
	s.lastError = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.authenticating = false
		s.mu.Unlock()
	}()

	var payload struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}
	err := s.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "Login failed", &payload)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		return Result{Success: false, Error: err.Error()}
	}

	if err := s.client.SetToken(ctx, payload.Token); err != nil {
		s.mu.Lock()
		s.lastError = "Login failed"
		s.mu.Unlock()
		return Result{Success: false, Error: "Login failed"}
	}

	s.mu.Lock()
	s.user = &payload.User
	s.mu.Unlock()
	return Result{Success: true}
}

// Logout discards the token and clears the profile and any recorded error.
func (s *Session) Logout(ctx context.Context) {
	_ = s.client.ClearToken(ctx)

	s.mu.Lock()
	s.user = nil
	s.lastError = ""
	s.mu.Unlock()
}

// Invalidate is the 401/403 hook target: the api client has already erased
// the stored token by the time this runs, so only the in-memory state drops.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) IsAuthenticating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticating
}

// CurrentUser returns a copy of the profile, or nil when unauthenticated.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
