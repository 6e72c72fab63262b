package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
	"voicejournal/internal/platform/testkit"
)

// testIdP serves a JWKS for a freshly generated RSA key and signs tokens with it
type testIdP struct {
	key *rsa.PrivateKey
	kid string
	srv *httptest.Server
}

func newTestIdP(t *testing.T) *testIdP {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	testkit.MustNoErr(t, err)

	idp := &testIdP{key: key, kid: "test-key-1"}
	idp.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pub := key.Public().(*rsa.PublicKey)
		doc := map[string]any{
			"keys": []map[string]any{{
				"kid": idp.kid,
				"kty": "RSA",
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			}},
		}
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(idp.srv.Close)
	return idp
}

func (idp *testIdP) sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = idp.kid
	raw, err := tok.SignedString(idp.key)
	testkit.MustNoErr(t, err)
	return raw
}

func newVerifier(t *testing.T, idp *testIdP, issuer string) *Verifier {
	t.Helper()
	return New(Config{JWKSURL: idp.srv.URL, Issuer: issuer}, logger.Get().With().Logger())
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"email": "u@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func request(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestVerify_ValidToken(t *testing.T) {
	idp := newTestIdP(t)
	v := newVerifier(t, idp, "")

	pr, err := v.Verify(request(idp.sign(t, validClaims())))
	testkit.MustNoErr(t, err)

	if pr.UserID != "user-123" || pr.Email != "u@example.com" {
		t.Fatalf("principal: %+v", pr)
	}
}

func TestVerify_MissingHeader(t *testing.T) {
	idp := newTestIdP(t)
	v := newVerifier(t, idp, "")

	_, err := v.Verify(request(""))
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	idp := newTestIdP(t)
	v := newVerifier(t, idp, "")

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	_, err := v.Verify(request(idp.sign(t, claims)))
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerify_WrongKeyRejected(t *testing.T) {
	idp := newTestIdP(t)
	other := newTestIdP(t)
	v := newVerifier(t, idp, "")

	// token signed by another provider's key but claiming our kid
	otherTok := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims())
	otherTok.Header["kid"] = idp.kid
	raw, err := otherTok.SignedString(other.key)
	testkit.MustNoErr(t, err)

	_, err = v.Verify(request(raw))
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerify_IssuerMismatch(t *testing.T) {
	idp := newTestIdP(t)
	v := newVerifier(t, idp, "https://issuer.example.com/pool")

	claims := validClaims()
	claims["iss"] = "https://evil.example.com"

	_, err := v.Verify(request(idp.sign(t, claims)))
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	idp := newTestIdP(t)
	v := newVerifier(t, idp, "")

	claims := validClaims()
	delete(claims, "sub")

	_, err := v.Verify(request(idp.sign(t, claims)))
	if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
