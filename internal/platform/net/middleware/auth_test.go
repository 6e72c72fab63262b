package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "voicejournal/internal/platform/errors"
	pnet "voicejournal/internal/platform/net"
	"voicejournal/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	pr  middleware.Principal
	err error
}

func (f fakeAuthPort) Verify(r *http.Request) (middleware.Principal, error) {
	return f.pr, f.err
}

func bareWrite(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
}

// runAuth serves one request through the middleware and reports whether
// next ran plus what next observed on the context
func runAuth(t *testing.T, port middleware.AuthPort) (rr *httptest.ResponseRecorder, nextRan bool, uid, email string) {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextRan = true
		uid = pnet.UserID(r.Context())
		email = pnet.UserEmail(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	middleware.Auth(port, bareWrite)(next).ServeHTTP(rr, req)
	return rr, nextRan, uid, email
}

func TestAuth_NilPortPassesThrough(t *testing.T) {
	rr, nextRan, _, _ := runAuth(t, nil)

	if !nextRan {
		t.Fatal("expected next to be called")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAuth_ErrorFromPortWritesMappedError(t *testing.T) {
	rr, nextRan, _, _ := runAuth(t, fakeAuthPort{err: perr.Unauthorizedf("bad token")})

	if nextRan {
		t.Fatal("did not expect next to be called on auth error")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestAuth_SetsPrincipalOnContext(t *testing.T) {
	port := fakeAuthPort{pr: middleware.Principal{UserID: "u1", Email: "u1@example.com"}}
	rr, _, uid, email := runAuth(t, port)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if uid != "u1" || email != "u1@example.com" {
		t.Fatalf("expected principal on context, got user=%q email=%q", uid, email)
	}
}
