// Package schema holds the database schema and applies it idempotently.
// Every statement is create-if-not-exists so Apply is safe to run at boot
package schema

import (
	"context"
	_ "embed"

	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/store"
)

//go:embed 0001_init.sql
var initSQL string

// Apply runs the schema against q
func Apply(ctx context.Context, q store.RowQuerier) error {
	if _, err := q.Exec(ctx, initSQL); err != nil {
		return perr.FromPg(err, "apply schema")
	}
	return nil
}
