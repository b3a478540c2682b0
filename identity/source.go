package identity

import (
	"context"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const TokenRefreshError = "error refreshing access token"

// TokenSource hands out the stored token while it is valid and lets one
// caller at a time refresh it through the wrapped source. Rotated tokens
// are persisted before anyone sees them.
type TokenSource struct {
	store   *Store
	source  oauth2.TokenSource
	mutex   sync.Mutex
	current *oauth2.Token
}

func NewTokenSource(store *Store, source oauth2.TokenSource, current *oauth2.Token) *TokenSource {
	return &TokenSource{
		store:   store,
		source:  source,
		current: current,
	}
}

// NewSessionSource wraps a stored login token in a TokenSource that
// refreshes through the identity service's token endpoint using client.
func NewSessionSource(identityURL, clientID string, store *Store, client *http.Client, current *oauth2.Token) *TokenSource {
	config := &oauth2.Config{
		ClientID: clientID,
		Endpoint: Endpoint(identityURL),
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
	return NewTokenSource(store, config.TokenSource(ctx, current), current)
}

func (s *TokenSource) Token() (*oauth2.Token, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.current != nil && s.current.Valid() {
		return s.current, nil
	}

	token, err := s.source.Token()
	if err != nil {
		return nil, errors.Wrap(err, TokenRefreshError)
	}
	token = withRecoveredExpiry(token)

	if s.changed(token) {
		if err := s.store.Save(token); err != nil {
			return nil, err
		}
	}
	s.current = token
	return token, nil
}

func (s *TokenSource) changed(token *oauth2.Token) bool {
	return s.current == nil ||
		token.AccessToken != s.current.AccessToken ||
		token.RefreshToken != s.current.RefreshToken
}

// withRecoveredExpiry fills in a missing expiry from the access token's
// exp claim, for providers that omit expires_in from the token response.
func withRecoveredExpiry(token *oauth2.Token) *oauth2.Token {
	if !token.Expiry.IsZero() {
		return token
	}

	claims, err := ParseClaims(token.AccessToken)
	if err != nil || claims.Expiry.IsZero() {
		return token
	}
	token.Expiry = claims.Expiry
	return token
}
