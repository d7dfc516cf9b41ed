// Package models defines the core domain models for tripsplit.
//
// # Models
//
//   - Trip, Member: a shared expense context and its participants
//   - GroupExpense: a cost recorded against a trip, paid by one member and
//     split among a subset of members
//   - TravelExpense: a personal expense outside any trip
//   - Budget: the user-editable spending limit, in total and per category
//   - Currency, Conversion: exchange-rate reference data and converter history
//   - TouristPlace, AdventureActivity, TravelMode: catalog reference data
//
// Members are referenced by ID strings, never by pointer. Derived values
// (Member.TotalPaid, Member.TotalOwed, Trip.TotalExpenses) are caches and are
// recomputed from the expense set; they are never authoritative.
//
// Records decoded from persisted JSON are checked with their Validate method.
// Violations are reported as *MalformedRecordError, which matches
// ErrMalformedRecord under errors.Is.
package models
