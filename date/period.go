package date

import (
	"fmt"
	"strings"
)

// Period is the granularity at which a price history is resampled before
// computing returns.
type Period int

const (
	Daily Period = iota
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// PerYear returns the conventional number of periods in a year, used to
// annualize per-period statistics: 252 trading days or 12 months.
func (p Period) PerYear() int {
	switch p {
	case Daily:
		return 252
	case Monthly:
		return 12
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, accepting both "monthly" and "month" spellings.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", s)
	}
}
