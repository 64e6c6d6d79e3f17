// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progression holds the pure rules of the pocket-money game: the
// accrual transition applied on every recorded entry, level and badge
// derivation, the spending feedback evaluator and the aggregates computed
// over a user's ledger.
//
// Nothing in this package performs I/O or reads the wall clock; callers pass
// the current day explicitly.
package progression
