// Package repositories contains the sqlx data access layer. Each entity gets
// a read and a write repository; repositories take part in a request
// transaction when one is present in the context.
package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// txContextKey is an unexported type for the transaction context key
type txContextKey struct{}

var txKey = txContextKey{}

// TxToContext stores a transaction in the context.
func TxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// ext returns the request transaction when one is in flight, the pool
// otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// compact collapses a multi-line query into a single line for logging.
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
