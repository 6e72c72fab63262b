// Package http wires journal entry routes to the service port
package http

import (
	"net/http"
	"strconv"

	"voicejournal/internal/modkit/httpkit"
	"voicejournal/internal/services/api/entries/domain"
)

// Register mounts the entries routes on r
func Register(r httpkit.Router, svc domain.ServicePort) {
	httpkit.PostJSON(r, "/", createHandler(svc))
	httpkit.Get(r, "/", listHandler(svc))
	httpkit.Get(r, "/{entryID}", getHandler(svc))
	httpkit.PutJSON(r, "/{entryID}", updateHandler(svc))
	httpkit.Delete(r, "/{entryID}", deleteHandler(svc))
}

// createHandler godoc
// @Summary Create a journal entry
// @Description Persists a transcribed journal entry with its AI analysis fields
// @Tags entries
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Entry payload"
// @Success 201 {object} domain.CreateResult
// @Router /entries [post]
func createHandler(svc domain.ServicePort) func(*http.Request, domain.CreateInput) (any, error) {
	return func(r *http.Request, in domain.CreateInput) (any, error) {
		out, err := svc.Create(r.Context(), httpkit.MustUser(r), in)
		if err != nil {
			return nil, err
		}
		return httpkit.Created(out), nil
	}
}

// listHandler godoc
// @Summary List journal entries
// @Description Returns a page of the caller's entries, optionally filtered by sentiment or a text search
// @Tags entries
// @Produce json
// @Param sentiment query string false "Sentiment filter (positive, neutral, negative)"
// @Param search query string false "Substring match over transcription and summary"
// @Param sort query string false "newest (default) or oldest"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} domain.ListResult
// @Router /entries [get]
func listHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		q := domain.ListQuery{
			Sentiment: r.URL.Query().Get("sentiment"),
			Search:    r.URL.Query().Get("search"),
			Sort:      r.URL.Query().Get("sort"),
			Page:      intQuery(r, "page"),
			Limit:     intQuery(r, "limit"),
		}
		return svc.List(r.Context(), httpkit.MustUser(r), q)
	}
}

// getHandler godoc
// @Summary Fetch a single journal entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry id"
// @Success 200 {object} domain.Entry
// @Failure 404 {object} httpkit.Envelope
// @Router /entries/{entryID} [get]
func getHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		return svc.Get(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "entryID"))
	}
}

// updateHandler godoc
// @Summary Update a journal entry
// @Description Replaces the mutable fields of an entry; created_at never changes
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry id"
// @Param payload body domain.UpdateInput true "Updated fields"
// @Success 200 {object} domain.UpdateResult
// @Failure 404 {object} httpkit.Envelope
// @Router /entries/{entryID} [put]
func updateHandler(svc domain.ServicePort) func(*http.Request, domain.UpdateInput) (any, error) {
	return func(r *http.Request, in domain.UpdateInput) (any, error) {
		return svc.Update(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "entryID"), in)
	}
}

// deleteHandler godoc
// @Summary Delete a journal entry
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry id"
// @Success 200 {object} domain.DeleteResult
// @Failure 404 {object} httpkit.Envelope
// @Router /entries/{entryID} [delete]
func deleteHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		return svc.Delete(r.Context(), httpkit.MustUser(r), httpkit.Param(r, "entryID"))
	}
}

func intQuery(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}
