// Package corpus embeds the daisyUI documentation text and parses it
// into domain entries.
//
// The corpus is compiled into the binary and loaded exactly once per
// process lifetime; the resulting indexes are then treated as
// read-only. Parsing is tolerant of surrounding whitespace and blank
// separator lines but rejects records missing a name or a body, failing
// with a domain.CorpusFormatError naming the first malformed record.
//
// # Formats
//
// components.txt is a sequence of "### Name" records. An optional
// "Category:" line follows the header; the remaining lines are the
// documentation body, whose first non-empty line doubles as the
// summary.
//
// concepts.txt is a sequence of "### Name" records with field lines
// "Description:", "Classes:", "Suggestion:", and "Snippet:". Only the
// description is required.
package corpus
