package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/badgeops/badgeops/internal/audit/domain"
	"github.com/badgeops/badgeops/internal/database"
	apperrors "github.com/badgeops/badgeops/internal/errors"
)

// MySQLEventRepository implements audit event persistence for MySQL.
// UUIDs are stored as CHAR(36) strings; metadata as JSON.
type MySQLEventRepository struct {
	db *sql.DB
}

// Create inserts a new audit event.
func (m *MySQLEventRepository) Create(ctx context.Context, event *auditDomain.Event) error {
	querier := database.GetTx(ctx, m.db)

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit metadata")
	}

	var recordID *string
	if event.RecordID != nil {
		s := event.RecordID.String()
		recordID = &s
	}

	query := `INSERT INTO audit_events (id, actor_id, action, area, record_id, outcome, metadata, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		event.ID.String(),
		event.ActorID.String(),
		event.Action,
		event.Area,
		recordID,
		event.Outcome,
		metadata,
		event.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create audit event")
	}
	return nil
}

// List retrieves audit events ordered by created_at descending with pagination
// and optional inclusive time filters.
func (m *MySQLEventRepository) List(
	ctx context.Context,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*auditDomain.Event, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, actor_id, action, area, record_id, outcome, metadata, created_at
			  FROM audit_events
			  WHERE (? IS NULL OR created_at >= ?)
			    AND (? IS NULL OR created_at <= ?)
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, createdAtFrom, createdAtFrom, createdAtTo, createdAtTo, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit events")
	}
	defer rows.Close()

	events := []*auditDomain.Event{}
	for rows.Next() {
		var event auditDomain.Event
		var recordID uuid.NullUUID
		var metadata []byte

		err := rows.Scan(
			&event.ID,
			&event.ActorID,
			&event.Action,
			&event.Area,
			&recordID,
			&event.Outcome,
			&metadata,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan audit event")
		}

		if recordID.Valid {
			event.RecordID = &recordID.UUID
		}

		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &event.Metadata); err != nil {
				return nil, apperrors.Wrap(err, "failed to unmarshal audit metadata")
			}
		}

		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate audit events")
	}

	return events, nil
}

// DeleteOlderThan removes audit events created before the cutoff.
func (m *MySQLEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM audit_events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit events")
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return deleted, nil
}

// NewMySQLEventRepository creates a new MySQL audit event repository.
func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}
