// Package driven defines the driven (outbound) port interfaces.
//
// Driven ports are implemented by infrastructure adapters and consumed
// by core services: entry stores, the layout template registry, corpus
// sources, and the config store. Services depend on these interfaces,
// never on concrete adapters.
package driven
