// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/strongly/internal/platform/database"
)

// ErrNotExecuted is what [SQLRecorder.Query] answers; reads are only recorded.
var ErrNotExecuted = errors.New("testutil: statement recorded, not executed")

// Statement is one recorded SQL call with whitespace collapsed.
type Statement struct {
	SQL  string
	Args []any
}

// SQLRecorder is a [database.DB] that records statements instead of running them.
//
// Exec reports the next value queued in Affected as its row count (1 once the
// queue is drained). QueryRow scans nothing and reports [pgx.ErrNoRows]. The
// recorder is its own transaction; nested Begin calls share it.
type SQLRecorder struct {
	pgx.Tx

	Statements []Statement
	Affected   []int64
	Commits    int
	Rollbacks  int

	open bool
}

var _ database.DB = (*SQLRecorder)(nil)

func (r *SQLRecorder) record(sql string, args []any) {
	r.Statements = append(r.Statements, Statement{SQL: strings.Join(strings.Fields(sql), " "), Args: args})
}

// SQL lists the recorded statements without their arguments.
func (r *SQLRecorder) SQL() []string {
	out := make([]string, len(r.Statements))
	for i, statement := range r.Statements {
		out[i] = statement.SQL
	}
	return out
}

func (r *SQLRecorder) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.record(sql, args)

	affected := int64(1)
	if len(r.Affected) > 0 {
		affected, r.Affected = r.Affected[0], r.Affected[1:]
	}
	return pgconn.NewCommandTag(fmt.Sprintf("UPDATE %d", affected)), nil
}

func (r *SQLRecorder) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.record(sql, args)
	return nil, ErrNotExecuted
}

func (r *SQLRecorder) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.record(sql, args)
	return noRow{}
}

func (r *SQLRecorder) Begin(context.Context) (pgx.Tx, error) {
	r.open = true
	return r, nil
}

func (r *SQLRecorder) Commit(context.Context) error {
	if !r.open {
		return pgx.ErrTxClosed
	}
	r.open = false
	r.Commits++
	return nil
}

func (r *SQLRecorder) Rollback(context.Context) error {
	if !r.open {
		return pgx.ErrTxClosed
	}
	r.open = false
	r.Rollbacks++
	return nil
}

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }
