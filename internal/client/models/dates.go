package models

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the date format accepted from forms.
const DayLayout = "2006-01-02"

// ParseDay validates a YYYY-MM-DD date.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, s)
	}
	return d, nil
}

// FormatDay turns a YYYY-MM-DD form value into the ISO timestamp at UTC
// midnight the API expects. An empty input yields nil.
func FormatDay(s string) (*string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseDay(s)
	if err != nil {
		return nil, err
	}
	iso := d.UTC().Format("2006-01-02T15:04:05.000Z")
	return &iso, nil
}

// SplitIDs parses a comma-separated id list, dropping blanks.
func SplitIDs(s string) []string {
	ids := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
