// internal/service/dates.go
package service

import (
	"fmt"
	"time"
)

// parseDate accepts either a bare date or a full RFC3339 timestamp.
func parseDate(s string) (*time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}
