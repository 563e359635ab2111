// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Kovalev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalev/qr-mint/models"
)

func Test_buildInsertHistoryQuery(t *testing.T) {
	entry := models.HistoryEntry{
		ID:        "0198a001-7e01-7000-8000-000000000001",
		Kind:      models.WiFi,
		Payload:   "WIFI:T:WPA;S:Home;P:secret1;;",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	query, args, err := buildInsertHistoryQuery(entry)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into history")
	for _, c := range historyColumns {
		require.Contains(t, q, c)
	}

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	require.Len(t, args, 4)
	assert.Equal(t, entry.ID, args[0])
	assert.Equal(t, int(entry.Kind), args[1])
	assert.Equal(t, entry.Payload, args[2])
	assert.Equal(t, entry.CreatedAt, args[3])
}

func Test_buildSelectHistoryQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit bool
	}{
		{
			name:      "positive limit adds LIMIT clause",
			limit:     25,
			wantLimit: true,
		},
		{
			name:      "zero limit returns everything",
			limit:     0,
			wantLimit: false,
		},
		{
			name:      "negative limit returns everything",
			limit:     -1,
			wantLimit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectHistoryQuery(tt.limit)
			require.NoError(t, err)
			require.Empty(t, args)

			q := strings.ToLower(query)
			require.Contains(t, q, "select")
			require.Contains(t, q, "from history")
			require.Contains(t, q, "order by created_at desc")

			if tt.wantLimit {
				assert.Contains(t, q, "limit 25")
			} else {
				assert.NotContains(t, q, "limit")
			}
		})
	}
}

func Test_buildDeleteHistoryQuery(t *testing.T) {
	query, args, err := buildDeleteHistoryQuery("some-id")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from history")
	require.Contains(t, q, "id = ?")

	require.Len(t, args, 1)
	assert.Equal(t, "some-id", args[0])
}

func Test_buildPruneHistoryQuery(t *testing.T) {
	query, args, err := buildPruneHistoryQuery(200)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from history")
	// retained rows are resolved by a newest-first subquery
	require.Contains(t, q, "not in")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 200")
}
