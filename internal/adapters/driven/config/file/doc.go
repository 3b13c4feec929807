// Package file provides a TOML file-based configuration store.
//
// Configuration lives in ~/.daisyd/config.toml by default. Nested
// tables are flattened into dot-notation keys so the rest of the
// application can address settings as "generate.title" or
// "search.limit" without caring about TOML structure.
package file
