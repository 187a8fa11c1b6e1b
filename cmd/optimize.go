package cmd

import (
	"context"
	"flag"

	"github.com/etnz/frontier"
	"github.com/etnz/frontier/renderer"
	"github.com/google/subcommands"
)

// optimizeCmd holds the flags for the 'optimize' subcommand.
type optimizeCmd struct {
	marketFlags
	target       float64
	maxCondition float64
}

func (*optimizeCmd) Name() string { return "optimize" }
func (*optimizeCmd) Synopsis() string {
	return "compute the minimum-variance portfolio, optionally hitting a target return"
}
func (*optimizeCmd) Usage() string {
	return `mvo optimize [-target <percent>] [-period <period>] <symbols...>

  Computes the fully invested minimum-variance portfolio over the given
  instruments. With -target, also computes the minimum-variance portfolio
  achieving the given annualized return; short positions are allowed.

Usage Examples:
# Minimum-variance weights over three instruments.
$ mvo optimize AAPL.US MSFT.US NVD.F

# Also solve for an 18% annualized return.
$ mvo optimize -target 18 AAPL.US MSFT.US NVD.F
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {
	c.marketFlags.SetFlags(f)
	f.Float64Var(&c.target, "target", 0, "Annualized target return in percent. 0 solves the minimum-variance portfolio only.")
	f.Float64Var(&c.maxCondition, "max-condition", frontier.DefaultMaxCondition, "Covariance condition number above which the matrix is treated as singular.")
}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, r, period, err := c.returns(f.Args())
	if err != nil {
		return fail(err)
	}
	moments, err := frontier.EstimateMoments(r)
	if err != nil {
		return fail(err)
	}

	var target *frontier.Percent
	if c.target != 0 {
		t := frontier.Percent(c.target)
		target = &t
	}
	opts := &frontier.SolverOptions{MaxCondition: c.maxCondition}

	report, err := frontier.NewOptimization(moments, period, target, opts)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.OptimizationMarkdown(report))
	return subcommands.ExitSuccess
}
