// Package stockfolio provides the core bookkeeping for a cash-plus-assets
// portfolio. It is designed to be embeddable, deterministic, and fully
// in-memory, leaving file I/O and user interaction to thin collaborators.
//
// The core functionalities include:
//   - Purchase Lots: every acquisition is recorded as its own lot, carrying
//     the purchase day, unit price and remaining quantity.
//   - FIFO Liquidation: selling consumes the oldest lots first and reports
//     the realized profit against the exact cost basis consumed.
//   - Asset Valuation: shares, commodities and currencies each follow their
//     own friction model (brokerage minimum, storage decay, bid/ask spread),
//     applied per lot so that lots of the same symbol keep their own
//     acquisition price and holding duration.
//   - Order Book: pending buy/sell intents ranked by price attractiveness,
//     without any matching or execution.
//   - Snapshot Persistence: a pipe-delimited text form to save and restore a
//     whole account, used by the `sfo` command-line tool.
//
// All amounts are exact decimals; no float arithmetic leaks into the
// accounting.
package stockfolio
