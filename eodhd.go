package frontier

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/etnz/frontier/date"
	"github.com/shopspring/decimal"
)

const eodhdKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhdKeyEnv+"\". You can get one at https://eodhd.com/")

func eodhdAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdKeyEnv)
	}
	return *eodhdAPIFlag
}

// EODHD fetches end-of-day price history from the eodhd.com API.
// It implements PriceProvider.
type EODHD struct {
	APIKey  string
	BaseURL string       // defaults to the public API endpoint
	Client  *http.Client // defaults to a daily-expiring disk-caching client
}

// NewEODHD returns a provider configured from the -eodhd-api-key flag, or
// the EODHD_API_KEY environment variable when the flag is unset.
func NewEODHD() *EODHD { return &EODHD{APIKey: eodhdAPIKey()} }

func (e *EODHD) baseURL() string {
	if e.BaseURL != "" {
		return e.BaseURL
	}
	return "https://eodhd.com"
}

func (e *EODHD) client() *http.Client {
	if e.Client != nil {
		return e.Client
	}
	return newDailyCachingClient()
}

// Daily returns the daily OHLCV history for every requested symbol.
//
// Symbols use the EODHD ticker format "SYMBOL.EXCHANGECODE" (e.g. "AAPL.US").
// An unknown symbol or an empty history is surfaced as an error.
func (e *EODHD) Daily(symbols []string, from, to date.Date) (map[string][]PriceObservation, error) {
	if e.APIKey == "" {
		return nil, fmt.Errorf("eodhd: missing API key (flag -eodhd-api-key or env %s)", eodhdKeyEnv)
	}
	histories := make(map[string][]PriceObservation, len(symbols))
	for _, symbol := range symbols {
		observations, err := e.daily(symbol, from, to)
		if err != nil {
			return nil, fmt.Errorf("eodhd: fetching %q: %w", symbol, err)
		}
		histories[symbol] = observations
	}
	return histories, nil
}

// daily returns the daily prices for a given ticker, in ascending date order.
func (e *EODHD) daily(symbol string, from, to date.Date) ([]PriceObservation, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	// nota bene: bounds are included in the response, and history depth is
	// limited to 1 year with a free subscription.
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		e.baseURL(), url.PathEscape(symbol), e.APIKey, from, to)

	type bar struct {
		Date          date.Date       `json:"date"`
		Open          decimal.Decimal `json:"open"`
		High          decimal.Decimal `json:"high"`
		Low           decimal.Decimal `json:"low"`
		Close         decimal.Decimal `json:"close"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
		Volume        int64           `json:"volume"`
	}

	// that's the payload
	content := make([]bar, 0)
	if err := jwget(e.client(), addr, &content); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("empty history between %s and %s", from, to)
	}

	observations := make([]PriceObservation, 0, len(content))
	for _, b := range content {
		observations = append(observations, PriceObservation{
			Symbol:        symbol,
			Date:          b.Date,
			Open:          b.Open.InexactFloat64(),
			High:          b.High.InexactFloat64(),
			Low:           b.Low.InexactFloat64(),
			Close:         b.Close.InexactFloat64(),
			AdjustedClose: b.AdjustedClose.InexactFloat64(),
			Volume:        b.Volume,
		})
	}
	return observations, nil
}
