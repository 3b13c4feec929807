// Package corpusfs provides corpus source adapters: the build-time
// embedded corpus and an optional directory override for local
// experimentation. The override directory can be watched so edits to
// the corpus files swap a freshly parsed snapshot into the stores
// without restarting the process.
package corpusfs
