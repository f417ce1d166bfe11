package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func WriteUtilizationCSV(w io.Writer, stats []models.WeeklyUserStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"user_id", "username", "total_hours", "utilization_pct", "week_start"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range stats {
		row := []string{string(s.UserID), s.Username, formatFloat(s.TotalHours), formatFloat(s.UtilizationPercentage), s.WeekStartDate}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", s.UserID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteTimesheetsCSV(w io.Writer, ts []models.Timesheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "user_id", "project_id", "date", "hours", "status", "description", "rejection_reason"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range ts {
		row := []string{string(t.ID), string(t.UserID), string(t.ProjectID), t.Date, formatFloat(t.Hours), string(t.Status), t.Description, t.RejectionReason}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
