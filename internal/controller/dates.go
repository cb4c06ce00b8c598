// internal/controller/dates.go
package controller

import (
	"fmt"
	"time"
)

func parseDateParam(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}
