package strava

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"fitsync/internal/domain"
)

// refreshBuffer makes tokens refresh slightly before their actual expiry
// to absorb request latency.
const refreshBuffer = 5 * time.Minute

// ConnectionStore is the persistence capability the token source needs.
type ConnectionStore interface {
	FindByUser(ctx context.Context, userID, provider string) (*domain.ServiceConnection, error)
	UpdateTokens(ctx context.Context, conn *domain.ServiceConnection) error
}

// OAuthTokenSource implements TokenSource on top of stored service
// connections, refreshing access tokens through the provider's OAuth
// token endpoint and persisting rotated tokens.
type OAuthTokenSource struct {
	conns  ConnectionStore
	oauth  *oauth2.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewOAuthTokenSource creates a token source for the given client
// credentials. The token URL lives under the same API base as the rest of
// the client.
func NewOAuthTokenSource(baseURL, clientID, clientSecret string, conns ConnectionStore, logger *slog.Logger) *OAuthTokenSource {
	return &OAuthTokenSource{
		conns: conns,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: baseURL + "/oauth/token",
			},
		},
		logger: logger.With("source", ProviderID),
		now:    time.Now,
	}
}

// Token returns a valid access token for the user, refreshing and
// persisting it when it is expired or about to expire.
func (s *OAuthTokenSource) Token(ctx context.Context, userID string) (string, error) {
	conn, err := s.conns.FindByUser(ctx, userID, ProviderID)
	if err != nil {
		return "", fmt.Errorf("find connection: %w", err)
	}

	if conn.AccessToken != "" && conn.ExpiresAt.Sub(s.now()) > refreshBuffer {
		return conn.AccessToken, nil
	}

	// a token without an access token is always invalid, which forces
	// the oauth2 source to hit the refresh endpoint
	refreshed, err := s.oauth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: conn.RefreshToken,
	}).Token()
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}

	conn.AccessToken = refreshed.AccessToken
	if refreshed.RefreshToken != "" {
		conn.RefreshToken = refreshed.RefreshToken
	}
	conn.ExpiresAt = refreshed.Expiry

	if err := s.conns.UpdateTokens(ctx, conn); err != nil {
		return "", fmt.Errorf("persist refreshed token: %w", err)
	}

	s.logger.Debug("refreshed access token",
		"user_id", userID,
		"expires_at", conn.ExpiresAt,
	)

	return conn.AccessToken, nil
}
