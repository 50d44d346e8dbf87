// Package finance provides the types and functions for managing a
// single-user personal ledger of dated credit and debit transactions,
// tagged by category and payment mode.
//
// The core functionalities include:
//   - Ledger Management: an insertion-ordered collection of transactions
//     with stable opaque identities and a strict CRUD contract.
//   - Persistence: a human-editable CSV format with a legacy-tolerant
//     decoder and crash-safe atomic saves.
//   - Filtering: composable, stable predicates over date range, type,
//     payment mode, category, and free text.
//   - Aggregation: signed balances and the credit/debit by mode summary,
//     computed in exact decimal arithmetic.
//   - Category Registry: the externally-owned, sorted set of category
//     names, persisted one per line.
//
// This package serves as the foundational logic for the `pfm` command-line
// tool; everything here is a bounded, synchronous computation over an
// in-memory sequence, designed for exactly one writer.
package finance
