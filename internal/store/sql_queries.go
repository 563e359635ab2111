// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dkovalev/qr-mint/models"
)

const historyTable = "history"

var historyColumns = []string{"id", "kind", "payload", "created_at"}

// buildInsertHistoryQuery builds the INSERT for a single history row.
// SQLite uses "?" placeholders, squirrel's default format.
func buildInsertHistoryQuery(entry models.HistoryEntry) (string, []any, error) {
	return sq.Insert(historyTable).
		Columns(historyColumns...).
		Values(entry.ID, int(entry.Kind), entry.Payload, entry.CreatedAt).
		ToSql()
}

// buildSelectHistoryQuery builds the newest-first listing query.
// A non-positive limit means no LIMIT clause.
func buildSelectHistoryQuery(limit int) (string, []any, error) {
	builder := sq.Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder.ToSql()
}

func buildDeleteHistoryQuery(id string) (string, []any, error) {
	return sq.Delete(historyTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildPruneHistoryQuery builds a DELETE that keeps only the keep most
// recent rows. The retained set is resolved by a subquery ordered on
// created_at.
func buildPruneHistoryQuery(keep int) (string, []any, error) {
	subQuery, subArgs, err := sq.Select("id").
		From(historyTable).
		OrderBy("created_at DESC").
		Limit(uint64(keep)).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return sq.Delete(historyTable).
		Where("id NOT IN ("+subQuery+")", subArgs...).
		ToSql()
}
