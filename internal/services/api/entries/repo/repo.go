// Package repo provides postgres access for journal entries
package repo

import (
	"context"
	"time"

	"voicejournal/internal/modkit/repokit"
	perr "voicejournal/internal/platform/errors"
)

// Row is one persisted journal entry
type Row struct {
	UserID        string
	EntryID       string
	Transcription string
	Sentiment     string
	Summary       string
	Keywords      []string
	Tags          []string
	CreatedAt     time.Time
}

// Repo is the minimal persistence surface for entries
type Repo interface {
	Insert(ctx context.Context, row Row) error
	Get(ctx context.Context, userID, entryID string) (Row, error)
	List(ctx context.Context, userID string, f ListFilter) ([]Row, error)
	Count(ctx context.Context, userID string, f ListFilter) (int, error)
	Update(ctx context.Context, row Row) (Row, error)
	Delete(ctx context.Context, userID, entryID string) error
}

// ListFilter pushes list predicates into SQL instead of filtering in memory
type ListFilter struct {
	Sentiment string // exact label, empty matches all
	Search    string // substring over transcription and summary, empty matches all
	Oldest    bool   // sort ascending when true, default newest first
	Limit     int
	Offset    int
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

const entryColumns = `user_id, entry_id, transcription, sentiment, summary, keywords, tags, created_at`

func (r *queries) Insert(ctx context.Context, row Row) error {
	const sql = `
insert into entries (user_id, entry_id, transcription, sentiment, summary, keywords, tags, created_at)
values ($1, $2, $3, $4, $5, coalesce($6::text[], '{}'), coalesce($7::text[], '{}'), $8)
`
	_, err := r.q.Exec(ctx, sql,
		row.UserID, row.EntryID, row.Transcription, row.Sentiment,
		row.Summary, row.Keywords, row.Tags, row.CreatedAt,
	)
	if err != nil {
		return perr.FromPg(err, "insert entry")
	}
	return nil
}

func (r *queries) Get(ctx context.Context, userID, entryID string) (Row, error) {
	const sql = `
select ` + entryColumns + `
from entries
where user_id = $1 and entry_id = $2
`
	var row Row
	err := r.q.QueryRow(ctx, sql, userID, entryID).Scan(
		&row.UserID, &row.EntryID, &row.Transcription, &row.Sentiment,
		&row.Summary, &row.Keywords, &row.Tags, &row.CreatedAt,
	)
	if err != nil {
		return Row{}, perr.FromPg(err, "get entry")
	}
	return row, nil
}

// listPredicates is shared by List and Count so both see the same subset
const listPredicates = `
where user_id = $1
and ($2 = '' or sentiment = $2)
and ($3 = '' or strpos(lower(transcription), lower($3)) > 0 or strpos(lower(summary), lower($3)) > 0)
`

func (r *queries) List(ctx context.Context, userID string, f ListFilter) ([]Row, error) {
	sql := `select ` + entryColumns + `
from entries` + listPredicates
	if f.Oldest {
		sql += "order by created_at asc\n"
	} else {
		sql += "order by created_at desc\n"
	}
	sql += "limit $4 offset $5"

	rows, err := r.q.Query(ctx, sql, userID, f.Sentiment, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, perr.FromPg(err, "list entries")
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.UserID, &row.EntryID, &row.Transcription, &row.Sentiment,
			&row.Summary, &row.Keywords, &row.Tags, &row.CreatedAt,
		); err != nil {
			return nil, perr.FromPg(err, "scan entry")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err, "list entries")
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context, userID string, f ListFilter) (int, error) {
	sql := `select count(*) from entries` + listPredicates

	var n int
	if err := r.q.QueryRow(ctx, sql, userID, f.Sentiment, f.Search).Scan(&n); err != nil {
		return 0, perr.FromPg(err, "count entries")
	}
	return n, nil
}

func (r *queries) Update(ctx context.Context, row Row) (Row, error) {
	// created_at is immutable and deliberately absent from the set list
	const sql = `
update entries
set transcription = $3, sentiment = $4, summary = $5,
	keywords = coalesce($6::text[], '{}'), tags = coalesce($7::text[], '{}')
where user_id = $1 and entry_id = $2
returning ` + entryColumns + `
`
	var out Row
	err := r.q.QueryRow(ctx, sql,
		row.UserID, row.EntryID, row.Transcription, row.Sentiment,
		row.Summary, row.Keywords, row.Tags,
	).Scan(
		&out.UserID, &out.EntryID, &out.Transcription, &out.Sentiment,
		&out.Summary, &out.Keywords, &out.Tags, &out.CreatedAt,
	)
	if err != nil {
		return Row{}, perr.FromPg(err, "update entry")
	}
	return out, nil
}

func (r *queries) Delete(ctx context.Context, userID, entryID string) error {
	const sql = `delete from entries where user_id = $1 and entry_id = $2`

	tag, err := r.q.Exec(ctx, sql, userID, entryID)
	if err != nil {
		return perr.FromPg(err, "delete entry")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("entry not found")
	}
	return nil
}
