// Package cmd implements the CLI application to run mean-variance
// portfolio optimizations.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/frontier"
	"github.com/etnz/frontier/date"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands the main package registers.
var Commands = []subcommands.Command{
	&statsCmd{},
	&optimizeCmd{},
	&frontierCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// printMarkdown renders a markdown document for the terminal, falling back
// to the raw text when rendering is not possible.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// marketFlags holds the flags shared by every command that needs a return
// matrix: the instrument universe, the date range, the resampling period and
// the gap policy.
type marketFlags struct {
	from   string
	to     string
	period string
	policy string
}

func (c *marketFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", date.Today().Add(-365).String(), "Start of the price history (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", date.Today().String(), "End of the price history (YYYY-MM-DD).")
	f.StringVar(&c.period, "period", "monthly", "Resampling period for returns (daily, monthly).")
	f.StringVar(&c.policy, "policy", frontier.DropShortInstruments.String(), "Gap policy (drop-short-instruments, drop-incomplete-periods).")
}

// returns fetches prices for the positional symbols and builds the aligned
// return matrix.
func (c *marketFlags) returns(symbols []string) (*frontier.Market, *frontier.ReturnMatrix, date.Period, error) {
	if len(symbols) == 0 {
		return nil, nil, 0, fmt.Errorf("no symbols given, expected e.g. AAPL.US NVD.F")
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return nil, nil, 0, err
	}
	policy, err := frontier.ParseUniversePolicy(c.policy)
	if err != nil {
		return nil, nil, 0, err
	}
	from, err := date.Parse(c.from)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("parsing -from: %w", err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("parsing -to: %w", err)
	}

	market, err := frontier.FetchMarket(frontier.NewEODHD(), symbols, from, to)
	if err != nil {
		return nil, nil, 0, err
	}
	r, err := frontier.Returns(market, period, policy)
	if err != nil {
		return nil, nil, 0, err
	}
	return market, r, period, nil
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
