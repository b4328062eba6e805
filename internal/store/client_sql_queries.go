// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const clientStateTable = "client_state"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildLoadSessionQuery(namespace string) (string, []any, error) {
	return sqlite.
		Select("payload").
		From(clientStateTable).
		Where(sq.Eq{"namespace": namespace}).
		Limit(1).
		ToSql()
}

func buildSaveSessionQuery(namespace, payload string, at time.Time) (string, []any, error) {
	return sqlite.
		Insert(clientStateTable).
		Columns("namespace", "payload", "updated_at").
		Values(namespace, payload, at).
		Suffix("ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSessionQuery(namespace string) (string, []any, error) {
	return sqlite.
		Delete(clientStateTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}
