package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fitsync/internal/domain"
)

type FTPStore struct {
	db *sqlx.DB
}

func NewFTPStore(db *sqlx.DB) *FTPStore {
	return &FTPStore{db: db}
}

func (s *FTPStore) History(ctx context.Context, userID string) ([]domain.FTPEntry, error) {
	query := `
		SELECT * FROM ftp_history
		WHERE user_id = $1
		ORDER BY effective_from`

	var entries []domain.FTPEntry
	if err := s.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FTPStore) Create(ctx context.Context, entry *domain.FTPEntry) error {
	query := `
		INSERT INTO ftp_history (user_id, ftp, effective_from)
		VALUES (:user_id, :ftp, :effective_from)`

	_, err := s.db.NamedExecContext(ctx, query, entry)
	return err
}
