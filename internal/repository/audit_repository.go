package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/pawnshop-gateway/internal/domain"
)

// AuditRepository defines persistence access for gateway audit events.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository returns a Postgres-backed implementation.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, record *domain.AuditRecord) error {
	const query = `
        INSERT INTO audit_events (id, event_type, client_id, role, reason, path)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		record.ID,
		record.EventType,
		record.ClientID,
		record.Role,
		record.Reason,
		record.Path,
	).Scan(&record.CreatedAt)
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	const query = `
        SELECT id, event_type, client_id, role, reason, path, created_at
        FROM audit_events
        ORDER BY created_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.EventType,
			&rec.ClientID,
			&rec.Role,
			&rec.Reason,
			&rec.Path,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
