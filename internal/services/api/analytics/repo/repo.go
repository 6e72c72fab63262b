// Package repo provides postgres access for analytics aggregation and the insight cache
package repo

import (
	"context"
	"time"

	"voicejournal/internal/modkit/repokit"
	perr "voicejournal/internal/platform/errors"
)

// EntryRow is the projection of a journal entry the aggregators need
type EntryRow struct {
	CreatedAt     time.Time
	Sentiment     string
	Keywords      []string
	Transcription string
}

// InsightRow is one cached period insight, keyed by the composite insight id
type InsightRow struct {
	InsightID    string
	UserID       string
	StartDate    time.Time
	EndDate      time.Time
	Summary      string
	Positive     int
	Neutral      int
	Negative     int
	TotalEntries int
	CreatedAt    time.Time
}

// Repo is the analytics persistence surface
type Repo interface {
	ListEntries(ctx context.Context, userID string) ([]EntryRow, error)
	ListEntriesRange(ctx context.Context, userID string, start, end time.Time) ([]EntryRow, error)
	UpsertInsight(ctx context.Context, row InsightRow) error
	GetInsight(ctx context.Context, insightID string) (InsightRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const entryProjection = `created_at, sentiment, keywords, transcription`

func (r *queries) ListEntries(ctx context.Context, userID string) ([]EntryRow, error) {
	const sql = `
select ` + entryProjection + `
from entries
where user_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPg(err, "list entries for analytics")
	}
	return scanEntries(rows)
}

// ListEntriesRange keeps the period predicate in SQL so only matching rows
// cross the wire. Bounds are inclusive calendar dates
func (r *queries) ListEntriesRange(ctx context.Context, userID string, start, end time.Time) ([]EntryRow, error) {
	const sql = `
select ` + entryProjection + `
from entries
where user_id = $1
and created_at::date between $2::date and $3::date
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, userID, start, end)
	if err != nil {
		return nil, perr.FromPg(err, "list entries in range")
	}
	return scanEntries(rows)
}

func scanEntries(rows repokit.Rows) ([]EntryRow, error) {
	defer rows.Close()

	var out []EntryRow
	for rows.Next() {
		var row EntryRow
		if err := rows.Scan(&row.CreatedAt, &row.Sentiment, &row.Keywords, &row.Transcription); err != nil {
			return nil, perr.FromPg(err, "scan analytics entry")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err, "iterate analytics entries")
	}
	return out, nil
}

// UpsertInsight writes through unconditionally; the last writer wins
func (r *queries) UpsertInsight(ctx context.Context, row InsightRow) error {
	const sql = `
insert into insights (insight_id, user_id, start_date, end_date, summary, positive, neutral, negative, total_entries, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
on conflict (insight_id) do update set
	summary = excluded.summary,
	positive = excluded.positive,
	neutral = excluded.neutral,
	negative = excluded.negative,
	total_entries = excluded.total_entries,
	created_at = excluded.created_at
`
	_, err := r.q.Exec(ctx, sql,
		row.InsightID, row.UserID, row.StartDate, row.EndDate, row.Summary,
		row.Positive, row.Neutral, row.Negative, row.TotalEntries, row.CreatedAt,
	)
	if err != nil {
		return perr.FromPg(err, "upsert insight")
	}
	return nil
}

func (r *queries) GetInsight(ctx context.Context, insightID string) (InsightRow, error) {
	const sql = `
select insight_id, user_id, start_date, end_date, summary, positive, neutral, negative, total_entries, created_at
from insights
where insight_id = $1
`
	var row InsightRow
	err := r.q.QueryRow(ctx, sql, insightID).Scan(
		&row.InsightID, &row.UserID, &row.StartDate, &row.EndDate, &row.Summary,
		&row.Positive, &row.Neutral, &row.Negative, &row.TotalEntries, &row.CreatedAt,
	)
	if err != nil {
		return InsightRow{}, perr.FromPg(err, "get insight")
	}
	return row, nil
}
