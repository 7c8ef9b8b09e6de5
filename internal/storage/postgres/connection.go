package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"fitsync/internal/domain"
)

type ConnectionStore struct {
	db *sqlx.DB
}

func NewConnectionStore(db *sqlx.DB) *ConnectionStore {
	return &ConnectionStore{db: db}
}

func (s *ConnectionStore) FindByProvider(ctx context.Context, provider string) ([]domain.ServiceConnection, error) {
	query := `
		SELECT * FROM service_connections
		WHERE provider = $1
		ORDER BY user_id`

	var conns []domain.ServiceConnection
	if err := s.db.SelectContext(ctx, &conns, query, provider); err != nil {
		return nil, err
	}
	return conns, nil
}

func (s *ConnectionStore) FindByUser(ctx context.Context, userID, provider string) (*domain.ServiceConnection, error) {
	query := `
		SELECT * FROM service_connections
		WHERE user_id = $1 AND provider = $2`

	var conn domain.ServiceConnection
	if err := s.db.GetContext(ctx, &conn, query, userID, provider); err != nil {
		return nil, err
	}
	return &conn, nil
}

// FindByProviderAccount resolves a webhook owner id to a connection.
// Returns nil when no user has linked that provider account.
func (s *ConnectionStore) FindByProviderAccount(ctx context.Context, provider, accountID string) (*domain.ServiceConnection, error) {
	query := `
		SELECT * FROM service_connections
		WHERE provider = $1 AND provider_account_id = $2`

	var conn domain.ServiceConnection
	err := s.db.GetContext(ctx, &conn, query, provider, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (s *ConnectionStore) UpdateTokens(ctx context.Context, conn *domain.ServiceConnection) error {
	query := `
		UPDATE service_connections SET
			access_token = :access_token,
			refresh_token = :refresh_token,
			expires_at = :expires_at
		WHERE user_id = :user_id AND provider = :provider`

	_, err := s.db.NamedExecContext(ctx, query, conn)
	return err
}

func (s *ConnectionStore) Create(ctx context.Context, conn *domain.ServiceConnection) error {
	query := `
		INSERT INTO service_connections (
			user_id, provider, provider_account_id, access_token, refresh_token, expires_at
		) VALUES (
			:user_id, :provider, :provider_account_id, :access_token, :refresh_token, :expires_at
		)`

	_, err := s.db.NamedExecContext(ctx, query, conn)
	return err
}

func (s *ConnectionStore) DeleteByProviderAccount(ctx context.Context, provider, accountID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM service_connections WHERE provider = $1 AND provider_account_id = $2`,
		provider, accountID,
	)
	return err
}
