package pricing

import (
	"math"
	"time"

	"rental-core/internal/pkg/errs"
)

var (
	ErrInvalidPeriodType = errs.Validation("invalid rental period type")
	ErrInvalidWindow     = errs.Validation("rental end must not be before rental start")
	ErrInvalidQuantity   = errs.Validation("quantity must be positive")
	ErrNegativePrice     = errs.Validation("unit price cannot be negative")
	ErrInvalidTaxRate    = errs.Validation("tax rate must be between 0 and 100")
)

type PeriodType string

const (
	PeriodHourly  PeriodType = "hourly"
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

func (p PeriodType) String() string {
	return string(p)
}

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

func NewPeriodType(s string) (PeriodType, error) {
	p := PeriodType(s)
	if !p.IsValid() {
		return "", ErrInvalidPeriodType
	}
	return p, nil
}

const (
	hoursPerDay   = 24
	daysPerWeek   = 7
	daysPerMonth  = 30
	minimumPeriod = 1
)

// Duration returns the number of whole billing units of period between start
// and end. Every rental is billed for at least one unit.
func Duration(start, end time.Time, period PeriodType) (int64, error) {
	if !period.IsValid() {
		return 0, ErrInvalidPeriodType
	}
	if end.Before(start) {
		return 0, ErrInvalidWindow
	}

	elapsed := end.Sub(start)
	days := int64(elapsed.Hours()) / hoursPerDay

	var units int64
	switch period {
	case PeriodHourly:
		units = int64(math.Ceil(elapsed.Hours()))
	case PeriodDaily:
		units = days
	case PeriodWeekly:
		units = days / daysPerWeek
	case PeriodMonthly:
		units = days / daysPerMonth
	}

	if units < minimumPeriod {
		return minimumPeriod, nil
	}
	return units, nil
}
