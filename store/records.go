// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Record is one result row keyed by column name.
type Record map[string]any

// Queryer is satisfied by *sql.DB and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryRecords runs query and returns every row as a Record. Values are
// whatever the driver produced when scanning into any.
func QueryRecords(ctx context.Context, q Queryer, query string, args ...any) ([]Record, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	records := []Record{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		record := make(Record, len(columns))
		for i, col := range columns {
			record[col] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Int64 reads an integer column, tolerating the representations drivers
// use for integer types.
func (r Record) Int64(col string) (int64, bool) {
	switch v := r[col].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// String reads a text column as stored, without normalization.
func (r Record) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Bool reads a nullable boolean column. SQLite stores booleans as 0/1 and
// text-protocol drivers may hand back "t"/"f".
func (r Record) Bool(col string) *bool {
	var b bool
	switch v := r[col].(type) {
	case nil:
		return nil
	case bool:
		b = v
	case int64:
		b = v != 0
	case []byte:
		return parseBool(col, string(v))
	case string:
		return parseBool(col, v)
	default:
		slog.Warn("unrecognized boolean value", "column", col, "type", fmt.Sprintf("%T", v))
		return nil
	}
	return &b
}

func parseBool(col, s string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		slog.Warn("unrecognized boolean value", "column", col, "value", s)
		return nil
	}
	return &b
}
