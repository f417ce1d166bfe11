package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the part of the bearer token the client cares about.
type Claims struct {
	Subject   string
	Role      models.Role
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that is not after now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseClaims decodes token without verifying its signature. The server is
// the only party that validates tokens; the client reads them for display
// and housekeeping.
func ParseClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if raw, ok := mc["role"].(string); ok {
		if role, err := models.ParseRole(strings.TrimPrefix(strings.ToUpper(raw), "ROLE_")); err == nil {
			c.Role = role
		}
	}
	return c, nil
}
