package store

import (
	"context"
	"errors"
	"time"

	"voicejournal/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// observer funnels query timing into the configured tracer. Both the pool
// adapter and the tx querier embed one so traced and untraced paths share
// the same logic
type observer struct {
	tracer pg.QueryTracer
	slowUS int64
}

func (o observer) done(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if o.tracer == nil {
		return
	}
	us := time.Since(start).Microseconds()
	o.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: us,
		Err:       err,
		Slow:      o.slowUS >= 0 && us >= o.slowUS,
	})
}

// pgAdapter exposes a pg.PG pool as RowQuerier and TxRunner
type pgAdapter struct {
	p   *pg.PG
	obs observer
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		p:   p,
		obs: observer{tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000},
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil {
		return errors.New("pg: nil adapter")
	}
	var one int
	return a.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (a *pgAdapter) Close() error { a.p.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.p.Pool.Exec(ctx, sql, args...)
	a.obs.done(ctx, sql, args, start, err)
	return cmdTag{ct}, err
}

func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.p.Pool.Query(ctx, sql, args...)
	a.obs.done(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowSet{rs}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	// the tracer fires after Scan so the event carries the scan error
	return tracedRow{
		r: a.p.Pool.QueryRow(ctx, sql, args...),
		after: func(scanErr error) {
			a.obs.done(ctx, sql, args, start, scanErr)
		},
	}
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{tx: tx, obs: a.obs}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// txQuerier satisfies RowQuerier on top of an open pgx.Tx so statements
// inside a transaction are traced the same as pool statements
type txQuerier struct {
	tx  pgx.Tx
	obs observer
}

func (t txQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.tx.Exec(ctx, sql, args...)
	t.obs.done(ctx, sql, args, start, err)
	return cmdTag{ct}, err
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.tx.Query(ctx, sql, args...)
	t.obs.done(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rowSet{rs}, nil
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return tracedRow{
		r: t.tx.QueryRow(ctx, sql, args...),
		after: func(scanErr error) {
			t.obs.done(ctx, sql, args, start, scanErr)
		},
	}
}

// thin pgx wrappers for the store's Row, Rows and CommandTag shapes

type tracedRow struct {
	r     pgx.Row
	after func(error)
}

func (x tracedRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rowSet struct{ r pgx.Rows }

func (x rowSet) Next() bool            { return x.r.Next() }
func (x rowSet) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rowSet) Err() error            { return x.r.Err() }
func (x rowSet) Close()                { x.r.Close() }

func (x rowSet) Columns() []string {
	fields := x.r.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f.Name)
	}
	return names
}

type cmdTag struct{ t pgconn.CommandTag }

func (t cmdTag) String() string      { return t.t.String() }
func (t cmdTag) RowsAffected() int64 { return t.t.RowsAffected() }
