package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
	"github.com/MKhiriev/go-keep-vault/models"
)

// auditRepository is the SQLite-backed implementation of [AuditRepository].
// It writes one row per vault operation into the "audit_events" table using
// the embedded [*DB] connection.
type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] backed by the SQLite
// database at dsn, running migrations on the way up.
func NewAuditRepository(ctx context.Context, dsn string, log *logger.Logger) (AuditRepository, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		log.Err(err).Msg("connection to audit database failed")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("audit database migration failed")
		return nil, err
	}

	return &auditRepository{DB: db, logger: log}, nil
}

// RecordEvent implements [AuditRepository]. The event timestamp is stored
// as RFC 3339 UTC.
func (a *auditRepository) RecordEvent(ctx context.Context, event models.AuditEvent) error {
	query, args, err := sq.Insert("audit_events").
		Columns("at", "op", "node_uuid", "kind", "detail").
		Values(event.At.UTC(), event.Op, event.NodeUUID, event.Kind, event.Detail).
		ToSql()
	if err != nil {
		a.logger.Err(err).Str("func", "auditRepository.RecordEvent").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		a.logger.Err(err).Str("func", "auditRepository.RecordEvent").Str("op", event.Op).Msg("failed to insert audit event")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListEvents implements [AuditRepository]. Events come back newest first;
// limit 0 means no limit.
func (a *auditRepository) ListEvents(ctx context.Context, limit uint64) ([]models.AuditEvent, error) {
	builder := sq.Select("id", "at", "op", "node_uuid", "kind", "detail").
		From("audit_events").
		OrderBy("id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		a.logger.Err(err).Str("func", "auditRepository.ListEvents").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		a.logger.Err(err).Str("func", "auditRepository.ListEvents").Msg("failed to query audit events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0, 50)
	for rows.Next() {
		var event models.AuditEvent
		if err = rows.Scan(&event.ID, &event.At, &event.Op, &event.NodeUUID, &event.Kind, &event.Detail); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

// Close releases the underlying database connection.
func (a *auditRepository) Close() error {
	return a.DB.Close()
}
