// Package models defines the core domain models for tripboard.
//
// # Itinerary
//
// The itinerary side is read-only data ingested from a published spreadsheet:
//   - ScheduleItem: one timed stop on a trip day, with up to three Options
//   - Candidate: a crowd-sourced place someone suggested visiting
//   - ChecklistCategory: a packing list whose completion is persisted per item
//
// # Ledger
//
// The ledger side is shared, mutable state kept in a remote store:
//   - Expense: one payment made by a member on behalf of some or all members
//   - Balance: a member's derived position (never stored)
//
// Members are identified by display name only. Names are the join key between
// the roster and Expense.Payer / Expense.SplitWith, and a name that has left
// the roster is tolerated everywhere rather than rejected.
package models
