package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
	operatorDomain "github.com/badgeops/badgeops/internal/operator/domain"
)

// PostgreSQLSessionRepository implements session persistence for PostgreSQL.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Create stores a new login session.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *operatorDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO sessions (id, token_hash, operator_id, expires_at, revoked_at, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
		session.TokenHash,
		session.OperatorID,
		session.ExpiresAt,
		session.RevokedAt,
		session.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create session")
	}
	return nil
}

// GetByTokenHash retrieves a session by its token hash. Returns
// ErrSessionNotFound if not found.
func (p *PostgreSQLSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*operatorDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, operator_id, expires_at, revoked_at, created_at
			  FROM sessions WHERE token_hash = $1`

	var session operatorDomain.Session
	var revokedAt sql.NullTime

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.TokenHash,
		&session.OperatorID,
		&session.ExpiresAt,
		&revokedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, operatorDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	if revokedAt.Valid {
		session.RevokedAt = &revokedAt.Time
	}
	return &session, nil
}

// Revoke marks a session as revoked.
func (p *PostgreSQLSessionRepository) Revoke(ctx context.Context, tokenHash string, at time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE sessions SET revoked_at = $1 WHERE token_hash = $2 AND revoked_at IS NULL`

	_, err := querier.ExecContext(ctx, query, at, tokenHash)
	if err != nil {
		return apperrors.Wrap(err, "failed to revoke session")
	}
	return nil
}

// DeleteExpired removes sessions that expired before the cutoff, returning
// the number deleted.
func (p *PostgreSQLSessionRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired sessions")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return deleted, nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
