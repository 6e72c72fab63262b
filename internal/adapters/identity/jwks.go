package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
)

// jwk is the subset of a JSON Web Key we need for RS256 verification
type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// keySet fetches and caches the identity provider's public keys.
// Keys rotate rarely, so a fetched set is reused until a lookup misses
type keySet struct {
	url  string
	http *http.Client
	log  logger.Logger

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
	last time.Time
}

// minRefreshInterval throttles refetches when a token carries an unknown kid
const minRefreshInterval = time.Minute

func newKeySet(url string, log logger.Logger) *keySet {
	return &keySet{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
		log:  log,
		keys: map[string]*rsa.PublicKey{},
	}
}

// Key returns the public key for kid, refreshing the set on a miss
func (ks *keySet) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	ks.mu.RLock()
	key, ok := ks.keys[kid]
	ks.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := ks.refresh(ctx); err != nil {
		return nil, err
	}

	ks.mu.RLock()
	key, ok = ks.keys[kid]
	ks.mu.RUnlock()
	if !ok {
		return nil, perr.Unauthorizedf("unknown signing key")
	}
	return key, nil
}

func (ks *keySet) refresh(ctx context.Context) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if time.Since(ks.last) < minRefreshInterval && len(ks.keys) > 0 {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ks.url, nil)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "jwks: build request")
	}
	resp, err := ks.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "jwks: fetch failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			ks.log.Warn().Err(cerr).Msg("jwks: close response body")
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return perr.Collaboratorf("jwks: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "jwks: read response")
	}
	var set jwks
	if err := json.Unmarshal(body, &set); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCollaborator, "jwks: decode response")
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			ks.log.Warn().Err(err).Str("kid", k.Kid).Msg("jwks: skip unparsable key")
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return perr.Collaboratorf("jwks: no usable keys")
	}

	ks.keys = keys
	ks.last = time.Now()
	return nil
}

// parseRSAKey builds an rsa.PublicKey from base64url modulus and exponent
func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "jwks: bad modulus")
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "jwks: bad exponent")
	}
	e := 0
	for _, b := range eb {
		e = e<<8 | int(b)
	}
	if e <= 0 {
		return nil, perr.InvalidArgf("jwks: non-positive exponent")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: e}, nil
}
