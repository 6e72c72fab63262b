// Package repokit holds the shared repository plumbing: the query surface
// repos are written against and the binder pattern services use to obtain
// transaction-scoped repos
package repokit

import (
	"context"

	"voicejournal/internal/platform/store"
)

// Queryer is the read and write surface repos execute SQL against
type Queryer = store.RowQuerier

// TxRunner runs a function inside a database transaction
type TxRunner = store.TxRunner

// Result aliases re-exported so repos avoid importing store directly
type (
	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// WithTx executes fn within a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
