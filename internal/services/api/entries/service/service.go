// Package service implements journal entry business logic
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voicejournal/internal/core/analyze"
	"voicejournal/internal/modkit/repokit"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/services/api/entries/domain"
	"voicejournal/internal/services/api/entries/repo"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Service implements domain.ServicePort
type Service struct {
	pg     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	now    func() time.Time
	newID  func() string
}

// NewService constructs the entries service. Panics if pg or binder are nil
func NewService(pg repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Service {
	if pg == nil {
		panic("entries: pg TxRunner is required")
	}
	if binder == nil {
		panic("entries: repo binder is required")
	}
	return &Service{pg: pg, binder: binder, now: time.Now, newID: uuid.NewString}
}

func (s *Service) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.CreateResult, error) {
	row := repo.Row{
		UserID:        userID,
		EntryID:       s.newID(),
		Transcription: in.Transcription,
		Sentiment:     string(analyze.Coerce(analyze.Sentiment(in.Sentiment))),
		Summary:       in.Summary,
		Keywords:      in.Keywords,
		Tags:          in.Tags,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.binder.Bind(s.pg).Insert(ctx, row); err != nil {
		return domain.CreateResult{}, err
	}
	return domain.CreateResult{Message: "Journal entry created.", EntryID: row.EntryID}, nil
}

func (s *Service) List(ctx context.Context, userID string, q domain.ListQuery) (domain.ListResult, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	f := repo.ListFilter{
		Sentiment: q.Sentiment,
		Search:    q.Search,
		Oldest:    q.Sort == "oldest",
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	r := s.binder.Bind(s.pg)
	rows, err := r.List(ctx, userID, f)
	if err != nil {
		return domain.ListResult{}, err
	}
	total, err := r.Count(ctx, userID, f)
	if err != nil {
		return domain.ListResult{}, err
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toEntry(row))
	}
	return domain.ListResult{
		Entries:      entries,
		TotalEntries: total,
		TotalPages:   (total + limit - 1) / limit,
		CurrentPage:  page,
	}, nil
}

func (s *Service) Get(ctx context.Context, userID, entryID string) (domain.Entry, error) {
	row, err := s.binder.Bind(s.pg).Get(ctx, userID, entryID)
	if err != nil {
		if perr.IsNotFound(err) {
			return domain.Entry{}, perr.NotFoundf("Entry not found.")
		}
		return domain.Entry{}, err
	}
	return toEntry(row), nil
}

func (s *Service) Update(
	ctx context.Context,
	userID, entryID string,
	in domain.UpdateInput,
) (domain.UpdateResult, error) {
	row := repo.Row{
		UserID:        userID,
		EntryID:       entryID,
		Transcription: in.Transcription,
		Sentiment:     string(analyze.Coerce(analyze.Sentiment(in.Sentiment))),
		Summary:       in.Summary,
		Keywords:      in.Keywords,
		Tags:          in.Tags,
	}
	out, err := s.binder.Bind(s.pg).Update(ctx, row)
	if err != nil {
		if perr.IsNotFound(err) {
			return domain.UpdateResult{}, perr.NotFoundf("Entry not found.")
		}
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{Message: "Journal entry updated.", Entry: toEntry(out)}, nil
}

func (s *Service) Delete(ctx context.Context, userID, entryID string) (domain.DeleteResult, error) {
	if err := s.binder.Bind(s.pg).Delete(ctx, userID, entryID); err != nil {
		if perr.IsNotFound(err) {
			return domain.DeleteResult{}, perr.NotFoundf("Entry not found.")
		}
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Message: "Journal entry deleted."}, nil
}

func toEntry(row repo.Row) domain.Entry {
	return domain.Entry{
		UserID:        row.UserID,
		EntryID:       row.EntryID,
		Transcription: row.Transcription,
		Sentiment:     row.Sentiment,
		Summary:       row.Summary,
		Keywords:      row.Keywords,
		Tags:          row.Tags,
		CreatedAt:     row.CreatedAt,
	}
}
