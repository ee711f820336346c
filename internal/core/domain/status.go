package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusPlanned   Status = "Planned"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// ParseStatus matches s case-insensitively against the known statuses.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusPlanned, StatusActive, StatusCompleted} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// DeriveStatus places a campaign in its lifecycle relative to now: Planned
// before the start date, Completed after the end date, Active otherwise.
// Dates are whole days, so a campaign ending today is still Active.
func DeriveStatus(start, end, now time.Time) Status {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case start.After(today):
		return StatusPlanned
	case end.Before(today):
		return StatusCompleted
	default:
		return StatusActive
	}
}
