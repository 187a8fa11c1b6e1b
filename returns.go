package frontier

import (
	"fmt"
	"slices"

	"github.com/etnz/frontier/date"
	"gonum.org/v1/gonum/mat"
)

// UniversePolicy decides how instruments with incomplete histories are
// reconciled into a dense return matrix.
type UniversePolicy int

const (
	// DropShortInstruments excludes instruments whose observation count is
	// below the maximum, preserving a common, dense time window. This is the
	// reference behavior; note that it biases the universe toward
	// longer-lived instruments.
	DropShortInstruments UniversePolicy = iota

	// DropIncompletePeriods keeps the whole universe and drops every period
	// for which at least one instrument has no observation.
	DropIncompletePeriods
)

func (p UniversePolicy) String() string {
	switch p {
	case DropShortInstruments:
		return "drop-short-instruments"
	case DropIncompletePeriods:
		return "drop-incomplete-periods"
	default:
		panic(fmt.Sprintf("unknown universe policy %d", p))
	}
}

// ParseUniversePolicy parses a policy name as printed by String, accepting
// the short spellings "instruments" and "periods" too.
func ParseUniversePolicy(s string) (UniversePolicy, error) {
	switch s {
	case "drop-short-instruments", "instruments":
		return DropShortInstruments, nil
	case "drop-incomplete-periods", "periods":
		return DropIncompletePeriods, nil
	default:
		return DropShortInstruments, fmt.Errorf("%w: unknown universe policy %q", ErrInvalidInput, s)
	}
}

// ReturnMatrix is a dense T×N matrix of simple returns, one row per period in
// ascending order, one column per instrument. It is a derived, read-only
// artifact: build it once with Returns and hold it immutable thereafter.
type ReturnMatrix struct {
	period  date.Period
	periods []date.Date
	symbols []string
	data    *mat.Dense
}

// Period returns the granularity the matrix was sampled at.
func (r *ReturnMatrix) Period() date.Period { return r.period }

// Periods returns the common period index, ascending.
func (r *ReturnMatrix) Periods() []date.Date { return slices.Clone(r.periods) }

// Symbols returns the instruments, one per column.
func (r *ReturnMatrix) Symbols() []string { return slices.Clone(r.symbols) }

// Dims returns the number of periods T and instruments N.
func (r *ReturnMatrix) Dims() (t, n int) { return r.data.Dims() }

// At returns the return of instrument j at period i.
func (r *ReturnMatrix) At(i, j int) float64 { return r.data.At(i, j) }

// Column returns a copy of the return series of instrument j.
func (r *ReturnMatrix) Column(j int) []float64 { return mat.Col(nil, j, r.data) }

// Returns builds the return matrix of a market at the given granularity.
//
// Per instrument, strictly within its own series and in ascending date order,
// the simple return price(t)/price(t-1) − 1 is computed over consecutive
// periods; the leading undefined return is dropped. The per-instrument series
// are then pivoted onto a common period index according to the policy.
//
// It fails with ErrInvalidInput on an empty market, fewer than 2 instruments
// after filtering (degenerate optimization), or fewer than 2 common periods
// (undefined covariance).
func Returns(market *Market, period date.Period, policy UniversePolicy) (*ReturnMatrix, error) {
	symbols := market.Symbols()
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty market", ErrInvalidInput)
	}

	resampled := market.Resample(period)

	// Per-instrument return series, leading undefined return dropped.
	returns := make(map[string]*date.History[float64], len(symbols))
	for _, symbol := range symbols {
		h := new(date.History[float64])
		var prev float64
		first := true
		for on, price := range resampled.History(symbol).Values() {
			if price <= 0 {
				return nil, fmt.Errorf("%w: non-positive price %v for %s on %s", ErrNumericDomain, price, symbol, on)
			}
			if !first {
				h.Append(on, price/prev-1)
			}
			prev, first = price, false
		}
		returns[symbol] = h
	}

	if policy == DropShortInstruments {
		longest := 0
		for _, symbol := range symbols {
			longest = max(longest, returns[symbol].Len())
		}
		symbols = slices.DeleteFunc(symbols, func(s string) bool {
			return returns[s].Len() < longest
		})
	}
	if len(symbols) < 2 {
		return nil, fmt.Errorf("%w: %d instrument(s) in universe, need at least 2", ErrInvalidInput, len(symbols))
	}

	// Common period index: periods where every kept instrument has a value.
	kept := make([]*date.History[float64], 0, len(symbols))
	for _, symbol := range symbols {
		kept = append(kept, returns[symbol])
	}
	var index []date.Date
	for on := range date.Iterate(kept...) {
		complete := true
		for _, h := range kept {
			if _, ok := h.Get(on); !ok {
				complete = false
				break
			}
		}
		if complete {
			index = append(index, on)
		}
	}
	if len(index) < 2 {
		return nil, fmt.Errorf("%w: %d common period(s), need at least 2", ErrInvalidInput, len(index))
	}

	data := mat.NewDense(len(index), len(symbols), nil)
	for i, on := range index {
		for j, symbol := range symbols {
			v, _ := returns[symbol].Get(on)
			data.Set(i, j, v)
		}
	}
	return &ReturnMatrix{period: period, periods: index, symbols: symbols, data: data}, nil
}
