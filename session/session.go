// Package session owns the authenticated identity: login, registration,
// logout, and restoring a previous session from durable local storage.
//
// The storage is a directory holding two entries, mirroring the fixed
// browser storage keys of the service: "access_token" (the opaque bearer
// token) and "user" (the serialized identity). Both must be present and
// readable for a session to be restored; anything less leaves the store
// unauthenticated and cleans the leftovers up.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/api"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenFilename = "access_token"
	userFilename  = "user"
)

// Store is the session store. It persists the token and user in its
// directory and keeps the api client's bearer token in sync.
type Store struct {
	dir    string
	client *api.Client
	user   *cryptofolio.User
}

// Open creates a store over the given directory and attempts to restore a
// previous session from it. On any 401 from the backend the persisted
// session is wiped, the command-line equivalent of being sent back to the
// login page.
func Open(dir string, client *api.Client) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("cannot create session directory %q: %w", dir, err)
	}
	s := &Store{dir: dir, client: client}
	client.OnUnauthorized(func() {
		log.Println("session expired, clearing stored credentials")
		s.wipe()
	})
	s.restore()
	return s, nil
}

// restore rehydrates the session from disk. A missing or corrupted record
// clears both entries and leaves the store unauthenticated; it never
// reports an error to the caller.
func (s *Store) restore() {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFilename))
	if err != nil {
		return
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, userFilename))
	if err != nil {
		s.wipe()
		return
	}
	var user cryptofolio.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("stored user record is corrupted, discarding session: %v", err)
		s.wipe()
		return
	}
	s.user = &user
	s.client.SetToken(strings.TrimSpace(string(token)))
}

// persist writes the token and user to disk.
func (s *Store) persist(token string, user cryptofolio.User) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFilename), []byte(token), 0600); err != nil {
		return fmt.Errorf("cannot persist session token: %w", err)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("cannot encode user record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFilename), raw, 0600); err != nil {
		return fmt.Errorf("cannot persist user record: %w", err)
	}
	return nil
}

// wipe removes both persisted entries and forgets the in-memory session.
func (s *Store) wipe() {
	os.Remove(filepath.Join(s.dir, tokenFilename))
	os.Remove(filepath.Join(s.dir, userFilename))
	s.user = nil
}

// Login exchanges credentials for a token and persists the session. On
// failure the session state is left unchanged.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := s.persist(resp.AccessToken, resp.User); err != nil {
		return err
	}
	s.user = &resp.User
	s.client.SetToken(resp.AccessToken)
	return nil
}

// Register creates the account then immediately logs in with the same
// credentials. A failure at either step rejects the whole operation.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	if _, err := s.client.Register(ctx, req); err != nil {
		return err
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout clears the persisted session. No server call is involved.
func (s *Store) Logout() {
	s.wipe()
	s.client.SetToken("")
}

// Current returns the authenticated identity, if any.
func (s *Store) Current() (cryptofolio.User, bool) {
	if s.user == nil {
		return cryptofolio.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool { return s.user != nil }

// TokenExpiry returns the expiry claim of the access token, when the
// token is a JWT carrying one. The claim is read without verifying the
// signature: verification is the backend's job, this is display only.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.client.Token()
	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
