package auth

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"
)

const (
	// AdminTokenHeader carries either the shared dashboard secret or a
	// per-account API token.
	AdminTokenHeader = "X-Admin-Token"
	// AdminActorHeader identifies the operator behind a status change.
	AdminActorHeader = "X-Admin-Actor"

	bearerPrefix = "Bearer "
	defaultActor = "ops-user"
)

type TokenChecker interface {
	TokenExists(ctx context.Context, token string) (bool, error)
}

// AdminGate guards the privileged order routes. Three credentials pass:
// the shared dashboard secret, an account API token, and (when a session
// secret is configured) a session token issued at login. When no shared
// secret is configured the gate fails open and admits everyone.
type AdminGate struct {
	secret        string
	sessionSecret []byte
	tokens        TokenChecker
}

func NewAdminGate(secret string, sessionSecret []byte, tokens TokenChecker) *AdminGate {
	return &AdminGate{
		secret:        secret,
		sessionSecret: sessionSecret,
		tokens:        tokens,
	}
}

// Credential extracts the caller's token from the admin header or, failing
// that, an Authorization: Bearer header.
func Credential(req *http.Request) string {
	if token := req.Header.Get(AdminTokenHeader); token != "" {
		return token
	}
	header := req.Header.Get("Authorization")
	if len(header) > len(bearerPrefix) && header[:len(bearerPrefix)] == bearerPrefix {
		return header[len(bearerPrefix):]
	}
	return ""
}

// Actor returns the operator identity for the audit trail.
func Actor(req *http.Request) string {
	if actor := req.Header.Get(AdminActorHeader); actor != "" {
		return actor
	}
	return defaultActor
}

func (g *AdminGate) Authorized(req *http.Request) bool {

	if g.secret == "" {
		return true
	}

	credential := Credential(req)
	if credential == "" {
		return false
	}

	if credential == g.secret {
		return true
	}

	if len(g.sessionSecret) > 0 {
		if _, err := GetSessionEmail(credential, g.sessionSecret); err == nil {
			return true
		}
	}

	ok, err := g.tokens.TokenExists(req.Context(), credential)
	if err != nil {
		logger.Errorf("Could not verify account token: %s", err.Error())
		return false
	}
	return ok
}

func (g *AdminGate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !g.Authorized(req) {
			w.Header().Set("content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, err := w.Write([]byte(`{"error":"Unauthorized"}`))
			if err != nil {
				logger.Error(err)
			}
			return
		}
		next.ServeHTTP(w, req)
	})
}
