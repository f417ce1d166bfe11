package models

import (
	"fmt"
	"slices"
	"strings"
)

// Role is the authorization role carried by a session.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleUser, RoleAdmin}

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(Roles, r) {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

// Session is the authenticated identity kept by the client. The bearer token
// is stored separately.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fieldRequired("username")
	}
	if c.Password == "" {
		return fieldRequired("password")
	}
	return nil
}

// LoginResponse is what POST /auth/login returns.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
