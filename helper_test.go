package frontier

import (
	"math"
	"testing"

	"github.com/etnz/frontier/date"
)

// seedMarket fills a market with adjusted closes for one symbol, keyed by day.
func seedMarket(m *Market, symbol string, prices map[string]float64) {
	for day, price := range prices {
		m.Add(PriceObservation{Symbol: symbol, Date: date.MustParse(day), AdjustedClose: price})
	}
}

// closeTo fails the test unless got is within tol of want (absolute).
func closeTo(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// sum returns the sum of a slice.
func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
