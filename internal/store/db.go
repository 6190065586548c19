package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle the stores execute against. Both
// *sql.DB and *sql.Tx satisfy it, so a store obtained through WithTx runs
// the same queries inside the caller's transaction. The meal stores rely on
// this to update a restaurant's menu atomically with the meal row.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
