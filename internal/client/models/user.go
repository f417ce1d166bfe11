package models

import (
	"fmt"
	"strings"
)

type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

func (u User) Key() string { return string(u.ID) }

// NewUser is the create-user form. ConfirmPassword never leaves the client.
type NewUser struct {
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Role            Role   `json:"role"`
}

func (u NewUser) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fieldRequired("username")
	}
	if u.Password == "" {
		return fieldRequired("password")
	}
	if u.Password != u.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, u.Role)
	}
	return nil
}

// WeeklyUserStats is one row of GET /users/stats/weekly.
type WeeklyUserStats struct {
	UserID                ID      `json:"userId"`
	Username              string  `json:"username"`
	TotalHours            float64 `json:"totalHours"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	WeekStartDate         string  `json:"weekStartDate"`
}
