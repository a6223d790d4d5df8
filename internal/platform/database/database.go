// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package database holds the small SQL helpers shared by every PostgreSQL repository.
//
// # Contents
//
//   - [Querier]: the subset of pgx shared by a pool and a transaction.
//   - [DB]: a Querier that can also begin (nested) transactions.
//   - [InTx]: run a function inside one transaction.
//   - [Assignments]: build the SET clause of a partial UPDATE.
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is implemented by both *pgxpool.Pool and pgx.Tx, so repository
// helpers run unchanged inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DB is what repositories hold. A pool and an open transaction both satisfy it, so
// the same repository can run standalone or inside a caller's transaction (the
// admin seed command relies on this).
type DB interface {
	Querier
	Beginner
}

// InTx runs fn in a single transaction: committed when fn returns nil,
// rolled back on any error (the error is returned unchanged).
func InTx(ctx context.Context, db Beginner, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, db, fn)
}

// Assignments accumulates "column = $n" pairs for a partial UPDATE.
//
// Only columns that were explicitly added end up in the statement, which is how
// PATCH leaves untouched fields alone.
type Assignments struct {
	columns []string
	args    []any
}

// Set records a column and its new value.
func (a *Assignments) Set(column string, value any) *Assignments {
	a.columns = append(a.columns, column)
	a.args = append(a.args, value)
	return a
}

// Empty reports whether no column was assigned.
func (a *Assignments) Empty() bool {
	return len(a.columns) == 0
}

// Len reports how many columns were assigned.
func (a *Assignments) Len() int {
	return len(a.columns)
}

// Clause renders the SET list. Placeholders start at $1.
func (a *Assignments) Clause() string {
	parts := make([]string, len(a.columns))
	for i, column := range a.columns {
		parts[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	return strings.Join(parts, ", ")
}

// Args returns the values in placeholder order, followed by extra trailing arguments
// (typically the WHERE clause values, numbered from Len()+1).
func (a *Assignments) Args(extra ...any) []any {
	out := make([]any, 0, len(a.args)+len(extra))
	out = append(out, a.args...)
	return append(out, extra...)
}
