package frontier

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        "plotlines": [
	            {
	                "label": "previous 1.049",
	                "value": 1.04875,
	                "id": "previousDay"
	            }
	        ]
	    },
*/
func lsLatestEURperUSD() (float64, error) {
	// this is not tradegate ;-)
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=349938&series=intraday&type=mini"
	var jobj any
	err := jwget(new(http.Client), addr, &jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", "EUR/USD", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", "EUR/USD", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", "EUR/USD", path, "not a float", jval)
	}
	return val, nil
}

// tradegateLatest returns the last price exchanged on Tradegate for an ISIN.
// Tradegate quotes everything in EUR.
func tradegateLatest(isin string) (float64, error) {
	addr := "https://www.tradegate.de/refresh.php?isin=" + isin

	var jobj map[string]any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", isin, err)
	}
	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval := jobj["last"]
	if s, ok := jval.(string); ok && s == "./." {
		// tradegate shows an empty last this way, use the bid instead
		log.Println("'last' is empty, falling back to 'bid'")
		jval = jobj["bid"]
	}
	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("cannot read value from %q: neither a float nor a string", isin)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		var err error
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("cannot read value from %q: invalid string %q: %w", isin, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return math.NaN(), fmt.Errorf("empty bid for %s: bidsize=%v", isin, jobj["bidsize"])
	}
	return val, nil
}

// TradegateQuote returns the latest traded price of an instrument in its own
// currency: the Tradegate EUR quote, converted through the live EUR/USD rate
// when the instrument is USD-denominated. Only EUR and USD are supported.
func TradegateQuote(isin, currency string) (float64, error) {
	eur, err := tradegateLatest(isin)
	if err != nil {
		return math.NaN(), err
	}
	switch currency {
	case "", "EUR":
		return eur, nil
	case "USD":
		rate, err := lsLatestEURperUSD()
		if err != nil {
			return math.NaN(), err
		}
		return eur * rate, nil
	default:
		return math.NaN(), fmt.Errorf("unsupported quote currency %q for %s", currency, isin)
	}
}
