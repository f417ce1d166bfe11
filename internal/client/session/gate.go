package session

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	DecisionRender Decision = iota
	DecisionRedirectLogin
	DecisionUnauthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Reader is the read side of Store.
type Reader interface {
	Get(ctx context.Context) (models.Session, bool)
	Token(ctx context.Context) (string, error)
}

type Gate struct {
	sessions Reader
}

func NewGate(sessions Reader) *Gate {
	return &Gate{sessions: sessions}
}

// Check decides whether a route restricted to allowed may render. With no
// roles given any authenticated session qualifies. Roles match exactly.
func (g *Gate) Check(ctx context.Context, allowed ...models.Role) Decision {
	sess, ok := g.sessions.Get(ctx)
	if !ok {
		return DecisionRedirectLogin
	}
	if token, err := g.sessions.Token(ctx); err != nil || token == "" {
		return DecisionRedirectLogin
	}
	if len(allowed) > 0 && !slices.Contains(allowed, sess.Role) {
		return DecisionUnauthorized
	}
	return DecisionRender
}
