// Package identity verifies bearer tokens issued by the managed identity
// provider and extracts the request principal from their claims
package identity

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"voicejournal/internal/platform/config"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
	"voicejournal/internal/platform/net/middleware"
)

// Config holds verifier settings
type Config struct {
	// JWKSURL is the provider's public key endpoint
	JWKSURL string
	// Issuer, when set, must match the token's iss claim
	Issuer string
}

// FromConf reads verifier config, prefix typically AUTH_
func FromConf(cfg config.Conf) Config {
	return Config{
		JWKSURL: cfg.MustString("JWKS_URL"),
		Issuer:  cfg.MayString("ISSUER", ""),
	}
}

// Verifier checks RS256 bearer tokens against the provider's JWKS.
// It implements middleware.AuthPort
type Verifier struct {
	cfg  Config
	keys *keySet
	log  logger.Logger
}

// New constructs a Verifier
func New(cfg Config, log logger.Logger) *Verifier {
	l := log.With().Str("component", "identity").Logger()
	return &Verifier{
		cfg:  cfg,
		keys: newKeySet(cfg.JWKSURL, l),
		log:  l,
	}
}

// Verify implements middleware.AuthPort
func (v *Verifier) Verify(r *http.Request) (middleware.Principal, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return middleware.Principal{}, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}))
	_, err = parser.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		kid, _ := tok.Header["kid"].(string)
		if kid == "" {
			return nil, perr.Unauthorizedf("token missing kid")
		}
		return v.keys.Key(r.Context(), kid)
	})
	if err != nil {
		v.log.Debug().Err(err).Msg("token verification failed")
		return middleware.Principal{}, perr.Unauthorizedf("invalid token")
	}

	if v.cfg.Issuer != "" {
		iss, _ := claims["iss"].(string)
		if iss != v.cfg.Issuer {
			return middleware.Principal{}, perr.Unauthorizedf("invalid token issuer")
		}
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return middleware.Principal{}, perr.Unauthorizedf("token missing subject")
	}
	email, _ := claims["email"].(string)

	return middleware.Principal{UserID: sub, Email: email}, nil
}

// bearerToken pulls the raw token out of the Authorization header
func bearerToken(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if authz == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	const prefix = "bearer "
	if len(authz) < len(prefix) || !strings.EqualFold(authz[:len(prefix)], prefix) {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
