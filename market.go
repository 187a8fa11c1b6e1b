package frontier

import (
	"fmt"
	"slices"

	"github.com/etnz/frontier/date"
)

// Market holds adjusted price history for a set of instruments.
type Market struct {
	symbols []string
	prices  map[string]*date.History[float64]
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{prices: make(map[string]*date.History[float64])}
}

// Add records price observations into the market, keyed by symbol, keeping
// only the adjusted close. Later observations for the same day overwrite
// earlier ones.
func (m *Market) Add(observations ...PriceObservation) {
	for _, obs := range observations {
		h, ok := m.prices[obs.Symbol]
		if !ok {
			h = new(date.History[float64])
			m.prices[obs.Symbol] = h
			m.symbols = append(m.symbols, obs.Symbol)
			slices.Sort(m.symbols)
		}
		h.Append(obs.Date, obs.AdjustedClose)
	}
}

// Has reports whether the market holds any price for the given symbol.
func (m *Market) Has(symbol string) bool {
	_, ok := m.prices[symbol]
	return ok
}

// Symbols returns the instruments in the market, sorted.
func (m *Market) Symbols() []string { return slices.Clone(m.symbols) }

// History returns the adjusted price history of a symbol, or nil if unknown.
func (m *Market) History(symbol string) *date.History[float64] { return m.prices[symbol] }

// Resample returns a new Market at the given period granularity.
//
// Daily keeps each observation. Monthly keeps the last adjusted price
// observed within each calendar month per instrument, relabelled on the last
// calendar day of the month so that instruments whose final trading day
// differs still align on a common period index.
func (m *Market) Resample(period date.Period) *Market {
	if period == date.Daily {
		return m
	}
	out := NewMarket()
	for _, symbol := range m.symbols {
		h := new(date.History[float64])
		var monthDay date.Date
		var monthPrice float64
		for on, price := range m.prices[symbol].Values() {
			if !monthDay.IsZero() && !monthDay.SameMonth(on) {
				h.Append(monthDay.EndOfMonth(), monthPrice)
			}
			monthDay, monthPrice = on, price
		}
		if !monthDay.IsZero() {
			h.Append(monthDay.EndOfMonth(), monthPrice)
		}
		out.prices[symbol] = h
		out.symbols = append(out.symbols, symbol)
	}
	return out
}

// FetchMarket retrieves the full history for the given symbols from the
// provider in a single blocking call and assembles it into a Market.
//
// A symbol with an empty history is an error: the optimizer downstream
// requires a dense matrix, and silently dropping a requested instrument
// would bias the universe without the caller's consent.
func FetchMarket(provider PriceProvider, symbols []string, from, to date.Date) (*Market, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no symbols requested", ErrInvalidInput)
	}
	histories, err := provider.Daily(symbols, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching prices: %w", err)
	}
	market := NewMarket()
	for _, symbol := range symbols {
		observations, ok := histories[symbol]
		if !ok || len(observations) == 0 {
			return nil, fmt.Errorf("%w: provider returned no history for %q", ErrInvalidInput, symbol)
		}
		market.Add(observations...)
	}
	return market, nil
}
