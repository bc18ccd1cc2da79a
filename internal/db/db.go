// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// package db is the persistence layer for the calculation history. A
// bun-backed store implements the Store interface over SQLite, MySQL or
// PostgreSQL; the rest of the application only talks to the interface.
package db

import "github.com/liuyuxun641102/liuyuxun/internal/model"

// Store defines the persistence operations for the calculation history.
type Store interface {
	AddCalculation(c model.Calculation) (int, error)
	GetAllCalculations() ([]model.Calculation, error)
	GetRecentCalculations(limit int) ([]model.Calculation, error)
	CountCalculations() (int, error)
	ClearCalculations() error
	Close() error
}

// store is the package-level default, set by New. The TUI and CLI reach
// persistence through the helpers below so tests can swap in a fake.
var store Store

// SetStore replaces the package default store. It returns the previous
// one so tests can restore it.
func SetStore(s Store) Store {
	prev := store
	store = s
	return prev
}

// HasStore reports whether a default store has been initialized.
func HasStore() bool { return store != nil }

// ActiveStore returns the package default store, or nil when none is set.
func ActiveStore() Store { return store }

// AddCalculation records a calculation in the default store.
func AddCalculation(c model.Calculation) (int, error) {
	return store.AddCalculation(c)
}

// GetAllCalculations returns the full history, oldest first.
func GetAllCalculations() ([]model.Calculation, error) {
	return store.GetAllCalculations()
}

// GetRecentCalculations returns up to limit entries, newest first.
func GetRecentCalculations(limit int) ([]model.Calculation, error) {
	return store.GetRecentCalculations(limit)
}

// CountCalculations returns the number of stored entries.
func CountCalculations() (int, error) {
	return store.CountCalculations()
}

// ClearCalculations deletes the entire history.
func ClearCalculations() error {
	return store.ClearCalculations()
}
