package models

import (
	"fmt"
	"strings"
)

type TimesheetStatus string

const (
	TimesheetSubmitted TimesheetStatus = "SUBMITTED"
	TimesheetApproved  TimesheetStatus = "APPROVED"
	TimesheetRejected  TimesheetStatus = "REJECTED"

	// timesheetPending is what some API versions report instead of SUBMITTED.
	timesheetPending TimesheetStatus = "PENDING"
)

// AwaitingReview reports whether an admin can still approve or reject.
func (s TimesheetStatus) AwaitingReview() bool {
	return s == TimesheetSubmitted || s == timesheetPending
}

type Timesheet struct {
	ID              ID              `json:"id"`
	UserID          ID              `json:"userId"`
	ProjectID       ID              `json:"projectId"`
	Date            string          `json:"date"`
	Hours           float64         `json:"hours"`
	Description     string          `json:"description,omitempty"`
	Status          TimesheetStatus `json:"status"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
}

func (t Timesheet) Key() string { return string(t.ID) }

// NewTimesheet is a timesheet before the server assigns id and owner.
type NewTimesheet struct {
	ProjectID   string          `json:"projectId"`
	Date        string          `json:"date"`
	Hours       float64         `json:"hours"`
	Description string          `json:"description,omitempty"`
	Status      TimesheetStatus `json:"status"`
}

func (t NewTimesheet) Validate() error {
	if strings.TrimSpace(t.ProjectID) == "" {
		return fieldRequired("project id")
	}
	if strings.TrimSpace(t.Date) == "" {
		return fieldRequired("date")
	}
	if t.Hours <= 0 {
		return fmt.Errorf("%w: hours must be positive", ErrValidation)
	}
	return nil
}

// RejectRequest is the body of PATCH /timesheets/{id}/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// TimesheetSummary is GET /timesheets/stats/summary.
type TimesheetSummary struct {
	TotalSubmittedTimesheets int     `json:"totalSubmittedTimesheets"`
	TotalApprovedTimesheets  int     `json:"totalApprovedTimesheets"`
	TotalRejectedTimesheets  int     `json:"totalRejectedTimesheets"`
	TotalBilledHours         float64 `json:"totalBilledHours"`
}
