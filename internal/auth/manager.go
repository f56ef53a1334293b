package auth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"buildfetch/internal/endpoint"
	"buildfetch/pkg/logging"
)

// TokenStore abstracts the persisted settings store holding the
// bearer token. The manager reads the token fresh on every operation
// and writes back replacements; it never keeps a private copy that
// could go stale across a refresh.
type TokenStore interface {
	// Token returns the current bearer token, empty when absent.
	Token() string
	// StoreToken replaces the stored token.
	StoreToken(token *oauth2.Token) error
}

// Config holds the endpoint contract for the manager.
type Config struct {
	// VerifyURL is the GET endpoint validating the current token.
	VerifyURL string
	// IssueURL is the POST endpoint issuing tokens via the
	// client_credentials grant.
	IssueURL string
	// BasicCredential is the fixed base64 client credential for
	// issuance requests.
	BasicCredential string
}

// Manager owns the bearer-token verify/refresh state machine.
//
// Validity is decided by the verify endpoint on every call; there is
// no local expiry check. A failed verification triggers exactly one
// refresh attempt in the same call, and concurrent refreshes coalesce
// into a single issuance request.
type Manager struct {
	client *endpoint.Client
	store  TokenStore
	config Config

	// refreshGroup deduplicates concurrent issuance calls so racing
	// verifiers await one request instead of each issuing their own.
	refreshGroup singleflight.Group
}

// NewManager creates a token manager using the given endpoint client
// and token store.
func NewManager(client *endpoint.Client, store TokenStore, config Config) *Manager {
	return &Manager{
		client: client,
		store:  store,
		config: config,
	}
}

// Verify performs a single verification call with the current token.
// It returns nil when the token is accepted. A rejected or missing
// token surfaces as an *endpoint.Error with an auth status; transport
// and decode failures propagate unchanged.
func (m *Manager) Verify(ctx context.Context) error {
	req := endpoint.Request{
		URL:    m.config.VerifyURL,
		Header: http.Header{"Authorization": {"bearer " + m.store.Token()}},
	}
	if _, err := m.client.Do(ctx, req); err != nil {
		return err
	}
	return nil
}

// tokenResponse is the token-issuance response shape.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Refresh obtains a new token with the fixed client credential and
// replaces the stored one. On failure the prior token is left in
// place. Concurrent calls coalesce into one issuance request.
func (m *Manager) Refresh(ctx context.Context) error {
	_, err, shared := m.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, m.doRefresh(ctx)
	})
	if shared {
		logging.Debug("Auth", "Refresh coalesced with an in-flight issuance call")
	}
	return err
}

func (m *Manager) doRefresh(ctx context.Context) error {
	req := endpoint.Request{
		URL:    m.config.IssueURL,
		Method: http.MethodPost,
		Header: http.Header{"Authorization": {"basic " + m.config.BasicCredential}},
		Form:   map[string][]string{"grant_type": {"client_credentials"}},
	}

	var resp tokenResponse
	if err := m.client.DoJSON(ctx, req, &resp); err != nil {
		logging.Warn("Auth", "Token issuance failed: %v", err)
		return &Error{Op: "refresh", Reason: err}
	}

	token := &oauth2.Token{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}
	if resp.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	if err := m.store.StoreToken(token); err != nil {
		return &Error{Op: "refresh", Reason: err}
	}

	logging.Info("Auth", "Issued new bearer token (expires_in=%ds)", resp.ExpiresIn)
	return nil
}

// EnsureValid verifies the current token and, when the verification
// is rejected, performs exactly one refresh attempt. It does not
// re-verify after a successful refresh and never loops. Transport and
// decode failures from the verify call propagate without triggering a
// refresh.
func (m *Manager) EnsureValid(ctx context.Context) error {
	err := m.Verify(ctx)
	if err == nil {
		return nil
	}

	var epErr *endpoint.Error
	if !asEndpointStatus(err, &epErr) {
		return err
	}

	logging.Debug("Auth", "Token verification rejected (status %d), refreshing", epErr.StatusCode)
	if refreshErr := m.Refresh(ctx); refreshErr != nil {
		return &Error{Op: "verify", Reason: refreshErr}
	}
	return nil
}
