package models

import (
	"fmt"
	"strings"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

type Project struct {
	ID               ID            `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	StartDate        string        `json:"startDate,omitempty"`
	EndDate          string        `json:"endDate,omitempty"`
	Status           ProjectStatus `json:"status"`
	AssignedUsers    []ID          `json:"assignedUsers"`
	TotalBudgetHours float64       `json:"totalBudgetHours"`
	TotalBilledHours float64       `json:"totalBilledHours"`
}

func (p Project) Key() string { return string(p.ID) }

// NewProject is the create/update project form. Dates are ISO-8601
// timestamps, see FormatDay.
type NewProject struct {
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	StartDate        *string       `json:"startDate"`
	EndDate          *string       `json:"endDate"`
	Status           ProjectStatus `json:"status"`
	AssignedUsers    []string      `json:"assignedUsers"`
	TotalBudgetHours float64       `json:"totalBudgetHours"`
	TotalBilledHours float64       `json:"totalBilledHours"`
}

func (p NewProject) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fieldRequired("name")
	}
	switch p.Status {
	case ProjectActive, ProjectOnHold, ProjectCompleted:
	default:
		return fmt.Errorf("%w: unknown project status %q", ErrValidation, p.Status)
	}
	if p.TotalBudgetHours < 0 || p.TotalBilledHours < 0 {
		return fmt.Errorf("%w: hours must not be negative", ErrValidation)
	}
	return nil
}

// AssignUsersRequest is the body of POST /projects/{id}/users.
type AssignUsersRequest struct {
	UserIDs []string `json:"userIds"`
}
