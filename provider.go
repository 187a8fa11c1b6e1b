package frontier

import (
	"github.com/etnz/frontier/date"
)

// PriceObservation is one trading day of history for a single instrument.
//
// AdjustedClose already incorporates splits and dividends, so that simple
// returns computed on it are economically comparable across time.
type PriceObservation struct {
	Symbol        string    `json:"symbol"`
	Date          date.Date `json:"date"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`
	AdjustedClose float64   `json:"adjusted_close"`
	Volume        int64     `json:"volume"`
}

// PriceProvider is the boundary to an external price data source.
//
// Implementations return, for each requested symbol, its daily price history
// in ascending date order. Unknown symbols, provider failures and empty
// histories must surface as errors, never as silently missing entries.
type PriceProvider interface {
	Daily(symbols []string, from, to date.Date) (map[string][]PriceObservation, error)
}
