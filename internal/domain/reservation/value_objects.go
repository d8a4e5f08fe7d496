package reservation

import (
	"fmt"
	"time"

	"rental-core/internal/pkg/errs"
)

var ErrInvalidPeriod = errs.Validation("rental period end must be after start")

// Period is a half-open interval [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps uses strict half-open comparison: back-to-back periods do not overlap.
func (p Period) Overlaps(o Period) bool {
	return p.start.Before(o.end) && p.end.After(o.start)
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
