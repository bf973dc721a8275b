// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/peninsula/internal/logger"

// Storages groups every repository sharing one connection pool.
type Storages struct {
	UserRepository         UserRepository
	RefreshTokenRepository RefreshTokenRepository
	AuditRepository        AuditRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		RefreshTokenRepository: NewRefreshTokenRepository(db, log),
		AuditRepository:        NewAuditRepository(db, log),
	}
}
