// Package kernel holds the shared value objects of the routeboard domain:
// the UUID used for orders and sessions, the Day a board is scoped to, and
// the user-typed Rank hint.
package kernel
