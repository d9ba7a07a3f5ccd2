// Package models defines the core domain models for paycycle.
//
// # Entities
//
// The following models are persisted by the storage layer:
//   - Household: a shared context for two members
//   - Member: a person in a household with a personal payday
//   - Account: a balance owned by exactly one member
//   - Transaction: a posting against an account, optionally shared
//   - SharedExpenseSplit: one member's owed share of another member's transaction
//   - Settlement: the immutable audit record of a debt resolution
//   - CategoryBudget / BudgetSummary: per-member allocations and recomputed spend
//
// # Derived values
//
// BudgetPeriod is never stored. It is recomputed from Member.PaydayDay and
// the current date on every read, so changing a payday never requires a
// migration of historical data.
//
// # Design Principles
//
//  1. **Money is decimal**: amounts use shopspring/decimal, never float64
//  2. **Avoid circular references**: use ID strings instead of pointers for relationships
//  3. **Derived, not accumulated**: spend and debt are folded from live records each time
package models
