// Package renderer turns the structured reports of the frontier package into
// markdown for human consumption, and the frontier sweep into a chart.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/frontier"
)

// reportRenderer accumulates a markdown document.
type reportRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *reportRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// StatsMarkdown renders the per-instrument descriptive statistics table.
func StatsMarkdown(s *frontier.Stats) string {
	r := &reportRenderer{Builder: &strings.Builder{}}
	r.Printf("# Descriptive Statistics (%s)\n\n", s.Period)
	r.Printf("%d instruments, %s to %s.\n\n", len(s.Assets), s.From, s.To)
	r.Printf("| Instrument | Obs. | Mean | Volatility | Annual Return | Annual Volatility | Last |\n")
	r.Printf("|---|---:|---:|---:|---:|---:|---:|\n")
	for _, asset := range s.Assets {
		last := "-"
		if asset.LastPrice != 0 {
			last = fmt.Sprintf("%.2f", asset.LastPrice)
		}
		r.Printf("| %s | %d | %s | %s | %s | %s | %s |\n",
			asset.Symbol, asset.Observations,
			asset.MeanReturn.SignedString(), asset.Volatility,
			asset.AnnualReturn.SignedString(), asset.AnnualVolatility, last)
	}
	return r.String()
}

// OptimizationMarkdown renders the weights and moments of an optimization run.
func OptimizationMarkdown(o *frontier.Optimization) string {
	r := &reportRenderer{Builder: &strings.Builder{}}
	r.Printf("# Mean-Variance Optimization (%s)\n\n", o.Period)

	r.renderPortfolio("Minimum-Variance Portfolio", &o.MinimumVariance)
	if o.Efficient != nil {
		r.Printf("\n")
		r.renderPortfolio(fmt.Sprintf("Efficient Portfolio (target %s)", o.Target), o.Efficient)
	}
	return r.String()
}

func (r *reportRenderer) renderPortfolio(title string, p *frontier.PortfolioReport) {
	r.Printf("## %s\n\n", title)
	r.Printf("| Instrument | Weight |\n")
	r.Printf("|---|---:|\n")
	for _, weight := range p.Weights {
		r.Printf("| %s | %s |\n", weight.Symbol, weight.Value.SignedString())
	}
	r.Printf("\nAnnualized expected return %s, volatility %s.\n", p.Return.SignedString(), p.Risk)
}

// FrontierMarkdown renders the frontier sweep as a table, thinned to every
// nth point so the table stays readable.
func FrontierMarkdown(f *frontier.FrontierReport, every int) string {
	if every < 1 {
		every = 1
	}
	r := &reportRenderer{Builder: &strings.Builder{}}
	r.Printf("# Efficient Frontier (%s)\n\n", f.Period)
	r.Printf("Lowest volatility %s at c=%.2f (annualized return %s).\n\n",
		f.MinRisk.Risk, f.MinRisk.Coefficient, f.MinRisk.Return.SignedString())
	r.Printf("| c | Annual Return | Annual Volatility |\n")
	r.Printf("|---:|---:|---:|\n")
	for i, point := range f.Points {
		if i%every != 0 && i != len(f.Points)-1 {
			continue
		}
		r.Printf("| %.2f | %s | %s |\n", point.Coefficient, point.Return.SignedString(), point.Risk)
	}
	return r.String()
}
