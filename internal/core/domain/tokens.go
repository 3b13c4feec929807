package domain

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopwords are dropped during tokenisation. Query terms consisting
// entirely of stopwords yield an empty result set, not an error.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "in": {}, "is": {},
	"it": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"this": {}, "to": {}, "with": {},
}

// foldTransformer strips combining marks after canonical decomposition,
// so accented input folds to its ASCII base form.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizeName canonicalises an entry or concept name for lookup:
// trimmed, lowercased, diacritics folded.
func NormalizeName(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Tokenize splits text into normalised search terms: lowercased,
// diacritics folded, punctuation stripped, whitespace split, stopwords
// and single characters dropped. Duplicates are removed, preserving
// first-seen order so scoring counts each distinct term once.
func Tokenize(text string) []string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		folded = text
	}

	fields := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// TagSet derives the sorted, deduplicated tag slice for an entry from
// its name, category, and body.
func TagSet(name, category, body string) []string {
	tags := Tokenize(name + " " + category + " " + body)
	sort.Strings(tags)
	return tags
}
