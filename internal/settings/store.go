package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"buildfetch/pkg/logging"
)

// DefaultSettingsDir is the default directory for persisted settings,
// relative to the user's home directory.
const DefaultSettingsDir = ".config/buildfetch"

// settingsFileName is the file holding persisted settings.
const settingsFileName = "settings.json"

// Settings is the persisted key-value state carried across runs. The
// bearer token is the only security-sensitive field.
type Settings struct {
	// AccessToken is the current bearer token. Empty when the tool has
	// never authenticated.
	AccessToken string `json:"access_token,omitempty"`

	// TokenType is typically "bearer".
	TokenType string `json:"token_type,omitempty"`

	// TokenExpiry is the remote-side expiry reported at issuance.
	// Informational only: validity is always decided by the verify
	// endpoint, never by a local clock check.
	TokenExpiry time.Time `json:"token_expiry,omitempty"`

	// TokenUpdatedAt records when the token was last replaced.
	TokenUpdatedAt time.Time `json:"token_updated_at,omitempty"`
}

// Store provides thread-safe persisted settings backed by a JSON file.
// The file is the source of truth: every read returns the current
// in-memory snapshot, and an optional fsnotify watcher picks up
// external edits to the file.
//
// Token values are never logged; only metadata is.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings

	watcher *watcher
}

// NewStore creates a store backed by the settings file in dir. When
// dir is empty the default directory under the user's home is used.
// An existing settings file is loaded; a missing file yields empty
// settings.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, DefaultSettingsDir)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	s := &Store{path: filepath.Join(dir, settingsFileName)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the settings file into memory. A missing file is not an
// error.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.mu.Lock()
			s.settings = Settings{}
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()

	logging.Debug("Settings", "Loaded settings from %s (has_token=%t)", s.path, loaded.AccessToken != "")
	return nil
}

// save persists the current settings to disk with owner-only
// permissions.
func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.settings, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or the empty string when no
// token is stored. This is a snapshot read; callers must not cache the
// value beyond a single operation.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.AccessToken
}

// SetToken replaces the stored bearer token and persists it. Passing
// the full oauth2 token keeps expiry metadata alongside the credential
// for status display.
func (s *Store) SetToken(token string) error {
	return s.StoreToken(&oauth2.Token{AccessToken: token})
}

// StoreToken replaces the stored token from an issuance response and
// persists it.
func (s *Store) StoreToken(token *oauth2.Token) error {
	s.mu.Lock()
	s.settings.AccessToken = token.AccessToken
	s.settings.TokenType = token.TokenType
	s.settings.TokenExpiry = token.Expiry
	s.settings.TokenUpdatedAt = time.Now()
	s.mu.Unlock()

	if err := s.save(); err != nil {
		return err
	}

	logging.Info("Settings", "Stored new bearer token (expiry=%s)", token.Expiry.Format(time.RFC3339))
	return nil
}

// ClearToken removes the stored token and persists the change.
func (s *Store) ClearToken() error {
	s.mu.Lock()
	s.settings.AccessToken = ""
	s.settings.TokenType = ""
	s.settings.TokenExpiry = time.Time{}
	s.settings.TokenUpdatedAt = time.Now()
	s.mu.Unlock()

	if err := s.save(); err != nil {
		return err
	}

	logging.Info("Settings", "Cleared stored bearer token")
	return nil
}

// Snapshot returns a copy of the current settings for display.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Watch starts watching the settings file for external edits and
// reloads on change. Stop with Close.
func (s *Store) Watch() error {
	w, err := newWatcher(s.path, func() {
		if err := s.load(); err != nil {
			logging.Warn("Settings", "Failed to reload settings after change: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.watcher = w
	return nil
}

// Close stops the file watcher, if running.
func (s *Store) Close() {
	if s.watcher != nil {
		s.watcher.stop()
		s.watcher = nil
	}
}
