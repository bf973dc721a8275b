// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/peninsula/internal/logger"
	"github.com/MKhiriev/peninsula/internal/store"
	"github.com/MKhiriev/peninsula/models"
)

type auditService struct {
	auditRepository store.AuditRepository
	logger          *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		logger:          logger,
	}
}

// Record writes the entry synchronously. The write is detached from the
// request's cancellation so that a client disconnect does not drop an entry
// for an action that already happened.
func (a *auditService) Record(ctx context.Context, actor *int64, action models.AuditAction, details map[string]any) {
	entry := models.AuditEntry{
		ActorUserID: actor,
		Action:      action,
		Details:     details,
	}

	if err := a.auditRepository.SaveAudit(context.WithoutCancel(ctx), entry); err != nil {
		log := logger.FromContext(ctx)
		event := log.Warn().Err(err).Str("action", string(action))
		if actor != nil {
			event = event.Int64("actor_user_id", *actor)
		}
		event.Msg("audit entry was not saved")
	}
}
