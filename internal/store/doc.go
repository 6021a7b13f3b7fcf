// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic. Each store is the single source of truth
// for its entity and hands out copies, never references into its own state.
package store
