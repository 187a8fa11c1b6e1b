package frontier

import (
	"fmt"
	"math"

	"github.com/etnz/frontier/date"
	"gonum.org/v1/gonum/stat"
)

// AssetStats summarizes one instrument's return series for the descriptive
// statistics report.
type AssetStats struct {
	Symbol           string
	Observations     int
	MeanReturn       Percent // per period
	Volatility       Percent // per period
	AnnualReturn     Percent
	AnnualVolatility Percent
	LastPrice        float64 // most recent quote, 0 when unavailable
}

// Stats is the descriptive statistics report over an aligned return matrix.
type Stats struct {
	Period date.Period
	From   date.Date
	To     date.Date
	Assets []AssetStats
}

// NewStats derives per-instrument descriptive statistics from a return
// matrix. Quotes, when provided, fill the last-price column; a missing quote
// degrades the column, never the report.
func NewStats(r *ReturnMatrix, quotes map[string]float64) *Stats {
	periods := r.Periods()
	scale := ScalingFor(r.Period())
	report := &Stats{
		Period: r.Period(),
		From:   periods[0],
		To:     periods[len(periods)-1],
	}
	for j, symbol := range r.Symbols() {
		column := r.Column(j)
		mean := stat.Mean(column, nil)
		sigma := math.Sqrt(stat.Variance(column, nil))
		report.Assets = append(report.Assets, AssetStats{
			Symbol:           symbol,
			Observations:     len(column),
			MeanReturn:       Percent(mean * 100),
			Volatility:       Percent(sigma * 100),
			AnnualReturn:     Percent(mean * scale.Return),
			AnnualVolatility: Percent(sigma * scale.Risk),
			LastPrice:        quotes[symbol],
		})
	}
	return report
}

// Weight is one instrument's share of a portfolio.
type Weight struct {
	Symbol string
	Value  Percent
}

// PortfolioReport is the presentation form of a solved portfolio:
// weights in percent and annualized moments.
type PortfolioReport struct {
	Weights []Weight
	Return  Percent // annualized
	Risk    Percent // annualized
}

func newPortfolioReport(p *Portfolio, scale Scaling) PortfolioReport {
	report := PortfolioReport{
		Return: Percent(p.Return * scale.Return),
		Risk:   Percent(p.Risk * scale.Risk),
	}
	for i, symbol := range p.Symbols {
		report.Weights = append(report.Weights, Weight{Symbol: symbol, Value: Percent(p.Weights[i] * 100)})
	}
	return report
}

// Optimization is the report of a mean-variance optimization run: the
// minimum-variance portfolio and, when a target was requested, the efficient
// portfolio achieving it.
type Optimization struct {
	Period          date.Period
	MinimumVariance PortfolioReport
	Target          *Percent         // annualized target return, nil when not requested
	Efficient       *PortfolioReport // nil when no target was requested
}

// NewOptimization solves the optimization and assembles its report.
//
// The target, when non-nil, is an annualized percent figure; it is converted
// back to a per-period return with the same scaling used for display, so
// that what the caller asks for is what the report shows.
func NewOptimization(m *Moments, period date.Period, target *Percent, opts *SolverOptions) (*Optimization, error) {
	scale := ScalingFor(period)
	mvp, err := MinimumVariance(m, opts)
	if err != nil {
		return nil, err
	}
	report := &Optimization{
		Period:          period,
		MinimumVariance: newPortfolioReport(mvp, scale),
	}
	if target == nil {
		return report, nil
	}
	eff, err := EfficientReturn(m, mvp, float64(*target)/scale.Return, opts)
	if err != nil {
		return nil, err
	}
	effReport := newPortfolioReport(eff, scale)
	report.Target = target
	report.Efficient = &effReport
	return report, nil
}

// FrontierReport is the materialized outcome of a frontier sweep, for
// rendering as a table or a chart.
type FrontierReport struct {
	Period  date.Period
	Points  []FrontierPoint
	MinRisk FrontierPoint // the lowest-volatility point of the sweep
}

// NewFrontierReport solves both reference portfolios, runs the sweep and
// collects the points.
func NewFrontierReport(m *Moments, period date.Period, target Percent, sweep Sweep, opts *SolverOptions) (*FrontierReport, error) {
	mvp, err := MinimumVariance(m, opts)
	if err != nil {
		return nil, err
	}
	scale := ScalingFor(period)
	eff, err := EfficientReturn(m, mvp, float64(target)/scale.Return, opts)
	if err != nil {
		return nil, err
	}
	points, err := Frontier(m, mvp, eff, sweep, opts)
	if err != nil {
		return nil, err
	}
	report := &FrontierReport{Period: period}
	for point := range points {
		report.Points = append(report.Points, point)
		if len(report.Points) == 1 || point.Risk < report.MinRisk.Risk {
			report.MinRisk = point
		}
	}
	if len(report.Points) == 0 {
		return nil, fmt.Errorf("%w: empty frontier sweep", ErrInvalidInput)
	}
	return report, nil
}
