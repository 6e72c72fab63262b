package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"voicejournal/internal/platform/net/http/bind"
	phttp "voicejournal/internal/platform/net/http"
	perr "voicejournal/internal/platform/errors"
)

func newRouter() (Router, *chi.Mux) {
	mux := chi.NewRouter()
	return phttp.AdaptChi(mux), mux
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v: %s", err, rec.Body.String())
	}
	return env
}

func TestGetWrapsDataInEnvelope(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/ping", func(*http.Request) (any, error) {
		return map[string]string{"pong": "yes"}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	env := decode(t, rec)
	if env.StatusCode != http.StatusOK || env.Error != "" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	data, _ := env.Data.(map[string]any)
	if data["pong"] != "yes" {
		t.Fatalf("data lost: %+v", env.Data)
	}
}

func TestGetMapsErrorsToStatus(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/missing", func(*http.Request) (any, error) {
		return nil, perr.NotFoundf("Entry not found.")
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Error != "Entry not found." {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestPostJSONBindingAndValidation(t *testing.T) {
	bind.Init()

	type payload struct {
		Transcription string `json:"transcription" validate:"required"`
	}

	r, mux := newRouter()
	PostJSON(r, "/entries", func(_ *http.Request, in payload) (any, error) {
		return Created(map[string]string{"got": in.Transcription}), nil
	})

	// valid body passes through and the handler's Response wins
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{"transcription":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}

	// missing required field is a 400 with a validation envelope
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/entries", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	env := decode(t, rec)
	if env.Error == "" {
		t.Fatalf("expected a validation message, got %+v", env)
	}
}

func TestParamReadsChiRouteParams(t *testing.T) {
	r, mux := newRouter()
	Get(r, "/entries/{entryID}", func(req *http.Request) (any, error) {
		return map[string]string{"id": Param(req, "entryID")}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/entries/abc-123", nil))

	env := decode(t, rec)
	data, _ := env.Data.(map[string]any)
	if data["id"] != "abc-123" {
		t.Fatalf("param lost: %+v", env.Data)
	}
}
