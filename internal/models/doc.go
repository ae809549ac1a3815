// Package models defines the domain types the Splitmate client exchanges with
// the hosted backend.
//
// # Ownership
//
// Every entity here is owned and persisted by the remote service. The client
// only holds transient copies in view state: nothing is cached across screens,
// and each screen re-fetches on entry.
//
//   - Session: authenticated-state projection of the current login
//   - User: the account behind the session (opaque id + email)
//   - Group: a named collection of users sharing expenses
//   - Membership: records that a user belongs to a group
//   - Expense: a single recorded cost attributed to a group
//
// # Design Principles
//
//  1. JSON tags match the remote service's column names exactly; these types
//     are the wire format, not just view models.
//  2. Nullable columns (expense timestamps, payer ids) map to pointers, and
//     money amounts decode through Amount so malformed rows degrade to zero
//     instead of failing the whole fetch.
//  3. Relationships use id strings, never pointers between entities.
package models
