// Package memory provides in-memory implementations of the entry
// stores.
//
// Each store holds an immutable snapshot behind an atomic pointer:
// readers never take locks, and Replace builds the complete new state
// before swapping the reference, preserving the lock-free read contract
// during corpus reloads.
package memory
