package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/frontier"
	"github.com/etnz/frontier/renderer"
	"github.com/google/subcommands"
)

// frontierCmd holds the flags for the 'frontier' subcommand.
type frontierCmd struct {
	marketFlags
	target       float64
	sweepFrom    float64
	sweepTo      float64
	step         float64
	every        int
	output       string
	maxCondition float64
}

func (*frontierCmd) Name() string { return "frontier" }
func (*frontierCmd) Synopsis() string {
	return "sweep the efficient frontier between two reference portfolios"
}
func (*frontierCmd) Usage() string {
	return `mvo frontier -target <percent> [-o <file.png>] <symbols...>

  Solves the minimum-variance portfolio and the efficient portfolio for the
  given annualized target return, then sweeps their linear combinations
  w(c) = (1-c)*mvp + c*eff over a coefficient range. Coefficients in [0,1]
  interpolate between the two portfolios, values outside extrapolate.

Usage Examples:
# Table of the default sweep, one row every 10 points.
$ mvo frontier -target 18 AAPL.US MSFT.US NVD.F

# Also write the curve as a PNG chart.
$ mvo frontier -target 18 -o frontier.png AAPL.US MSFT.US NVD.F
`
}

func (c *frontierCmd) SetFlags(f *flag.FlagSet) {
	c.marketFlags.SetFlags(f)
	f.Float64Var(&c.target, "target", 0, "Annualized target return in percent for the efficient reference portfolio.")
	f.Float64Var(&c.sweepFrom, "sweep-from", -0.40, "First combination coefficient of the sweep.")
	f.Float64Var(&c.sweepTo, "sweep-to", 1.90, "Last combination coefficient of the sweep.")
	f.Float64Var(&c.step, "step", 0.01, "Coefficient increment between frontier points.")
	f.IntVar(&c.every, "every", 10, "Display one table row every n frontier points.")
	f.StringVar(&c.output, "o", "", "Write the frontier curve as a PNG chart to this file.")
	f.Float64Var(&c.maxCondition, "max-condition", frontier.DefaultMaxCondition, "Covariance condition number above which the matrix is treated as singular.")
}

func (c *frontierCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target == 0 {
		return fail(fmt.Errorf("a -target annualized return is required to anchor the sweep"))
	}

	_, r, period, err := c.returns(f.Args())
	if err != nil {
		return fail(err)
	}
	moments, err := frontier.EstimateMoments(r)
	if err != nil {
		return fail(err)
	}

	sweep := frontier.Sweep{
		From:  c.sweepFrom,
		To:    c.sweepTo,
		Step:  c.step,
		Scale: frontier.ScalingFor(period),
	}
	opts := &frontier.SolverOptions{MaxCondition: c.maxCondition}

	report, err := frontier.NewFrontierReport(moments, period, frontier.Percent(c.target), sweep, opts)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.FrontierMarkdown(report, c.every))

	if c.output != "" {
		png, err := renderer.FrontierChart(report)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(c.output, png, 0644); err != nil {
			return fail(fmt.Errorf("writing chart to %q: %w", c.output, err))
		}
		fmt.Fprintf(os.Stderr, "Wrote frontier chart to %s\n", c.output)
	}

	return subcommands.ExitSuccess
}
