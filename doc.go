// Package frontier computes mean-variance efficient portfolios from
// historical equity prices.
//
// The core functionalities include:
//   - Market Data Integration: fetching daily OHLCV history from an external
//     price provider (EODHD) and holding adjusted price series per instrument.
//   - Return Matrix Construction: resampling price series to daily or monthly
//     granularity and pivoting per-instrument simple returns into a dense,
//     aligned matrix over a common period index.
//   - Moment Estimation: sample mean vector and unbiased sample covariance
//     matrix of the aligned returns.
//   - Portfolio Optimization: closed-form minimum-variance and target-return
//     efficient portfolios, solved through a Cholesky factorization so that a
//     singular covariance surfaces as a first-class error.
//   - Efficient Frontier: a lazy two-fund sweep between the two reference
//     portfolios, annualized by a caller-chosen scaling convention.
//
// This package serves as the foundational logic for the `mvo` command-line
// tool. Every step consumes immutable inputs and returns a new immutable
// result; there is no shared mutable state across operations.
package frontier
