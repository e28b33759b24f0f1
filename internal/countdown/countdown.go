// Package countdown formats the time left until a sale ends.
package countdown

import (
	"fmt"
	"time"
)

const Ended = "Sale ended"

// Format renders remaining as "1d 2h 3m 4s"; the day part is left out when
// zero. Negative durations read Ended.
func Format(remaining time.Duration) string {
	if remaining < 0 {
		return Ended
	}

	d := remaining / (24 * time.Hour)
	h := (remaining % (24 * time.Hour)) / time.Hour
	m := (remaining % time.Hour) / time.Minute
	s := (remaining % time.Minute) / time.Second

	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", d, h, m, s)
	}
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// Sale is a countdown towards a fixed end.
type Sale struct {
	end time.Time
	now func() time.Time
}

func NewSale(end time.Time, now func() time.Time) *Sale {
	if now == nil {
		now = time.Now
	}
	return &Sale{end: end, now: now}
}

func (s *Sale) Remaining() time.Duration {
	return s.end.Sub(s.now())
}

func (s *Sale) String() string {
	return Format(s.Remaining())
}
