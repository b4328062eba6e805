// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository returns a [SessionRepository] backed by the
// client_state table of db.
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *sessionRepository) Load(ctx context.Context, namespace string) (models.AuthSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery(namespace)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("error building query")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AuthSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Str("namespace", namespace).Msg("error scanning session row")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var session models.AuthSession
	if err = json.Unmarshal([]byte(payload), &session); err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Str("namespace", namespace).Msg("stored session is not valid JSON")
		return models.AuthSession{}, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}

	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, namespace string, session models.AuthSession) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	query, args, err := buildSaveSessionQuery(namespace, string(payload), r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Str("namespace", namespace).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, namespace string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(namespace)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Str("namespace", namespace).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
