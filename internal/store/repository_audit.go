// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/models"
)

type auditRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuditRepository constructs an [AuditRepository].
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAudit appends one entry. Nil details are stored as an empty object.
func (r *auditRepository) SaveAudit(ctx context.Context, entry models.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("error marshaling audit details: %w", err)
	}

	var actor any
	if entry.ActorUserID != nil {
		actor = *entry.ActorUserID
	}

	if _, err = r.db.ExecContext(ctx, saveAudit, actor, string(entry.Action), string(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
