package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/frontier"
	"github.com/etnz/frontier/renderer"
	"github.com/google/subcommands"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	marketFlags
	quotes string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display per-instrument return statistics" }
func (*statsCmd) Usage() string {
	return `mvo stats [-period <period>] [-from <date>] [-to <date>] <symbols...>

  Fetches the price history of the given instruments, computes their aligned
  simple returns, and displays per-instrument mean, volatility and their
  annualized equivalents.

Usage Examples:
$ mvo stats -period monthly AAPL.US MSFT.US NVD.F
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	c.marketFlags.SetFlags(f)
	f.StringVar(&c.quotes, "quotes", "", "Live quote sources, as comma-separated SYMBOL=ISIN[/CURRENCY] pairs fetched from Tradegate.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market, r, _, err := c.returns(f.Args())
	if err != nil {
		return fail(err)
	}

	quotes, err := c.liveQuotes()
	if err != nil {
		return fail(err)
	}
	// Fall back to the latest fetched price for instruments without a live source.
	for _, symbol := range r.Symbols() {
		if _, ok := quotes[symbol]; ok {
			continue
		}
		if h := market.History(symbol); h != nil && h.Len() > 0 {
			_, last := h.Latest()
			quotes[symbol] = last
		}
	}

	printMarkdown(renderer.StatsMarkdown(frontier.NewStats(r, quotes)))
	return subcommands.ExitSuccess
}

// liveQuotes resolves the -quotes mappings through Tradegate.
func (c *statsCmd) liveQuotes() (map[string]float64, error) {
	quotes := make(map[string]float64)
	if c.quotes == "" {
		return quotes, nil
	}
	for _, pair := range strings.Split(c.quotes, ",") {
		symbol, source, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -quotes entry %q, expected SYMBOL=ISIN[/CURRENCY]", pair)
		}
		isin, currency, _ := strings.Cut(source, "/")
		quote, err := frontier.TradegateQuote(isin, currency)
		if err != nil {
			// A dead live source degrades the column, not the report.
			fmt.Fprintf(os.Stderr, "Warning: no live quote for %s: %v\n", symbol, err)
			continue
		}
		quotes[symbol] = quote
	}
	return quotes, nil
}
