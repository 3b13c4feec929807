package corpus

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/daisy-days/daisyd/internal/core/domain"
)

// recordHeader marks the start of a corpus record.
const recordHeader = "### "

// rawRecord is a parsed but unvalidated corpus record.
type rawRecord struct {
	name  string
	line  int
	lines []string
}

// splitRecords scans the corpus text into header-delimited records.
// Text before the first header (file comments) is ignored.
func splitRecords(data []byte, source string) ([]rawRecord, error) {
	var records []rawRecord
	var current *rawRecord

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(line, recordHeader) {
			name := strings.TrimSpace(strings.TrimPrefix(line, recordHeader))
			if name == "" {
				return nil, &domain.CorpusFormatError{
					Source: source,
					Line:   lineNo,
					Reason: "record missing a name",
				}
			}
			records = append(records, rawRecord{name: name, line: lineNo})
			current = &records[len(records)-1]
			continue
		}

		if current != nil {
			current.lines = append(current.lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.CorpusFormatError{Source: source, Line: lineNo, Reason: err.Error()}
	}

	return records, nil
}

// ParseComponents parses the component documentation text into entries.
// Entries are returned in file order; the store sorts them by name.
func ParseComponents(data []byte) ([]domain.DocEntry, error) {
	records, err := splitRecords(data, "components")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	entries := make([]domain.DocEntry, 0, len(records))

	for _, rec := range records {
		name := domain.NormalizeName(rec.name)
		if _, dup := seen[name]; dup {
			return nil, &domain.CorpusFormatError{
				Source: "components",
				Line:   rec.line,
				Record: rec.name,
				Reason: "duplicate name",
			}
		}
		seen[name] = struct{}{}

		category := ""
		var body []string
		for _, line := range rec.lines {
			trimmed := strings.TrimSpace(line)
			if len(body) == 0 && trimmed == "" {
				continue
			}
			if category == "" && len(body) == 0 && strings.HasPrefix(trimmed, "Category:") {
				category = strings.TrimSpace(strings.TrimPrefix(trimmed, "Category:"))
				continue
			}
			body = append(body, line)
		}

		bodyText := strings.TrimSpace(strings.Join(body, "\n"))
		if bodyText == "" {
			return nil, &domain.CorpusFormatError{
				Source: "components",
				Line:   rec.line,
				Record: rec.name,
				Reason: "missing body",
			}
		}

		summary := bodyText
		if i := strings.IndexByte(summary, '\n'); i >= 0 {
			summary = strings.TrimSpace(summary[:i])
		}

		entries = append(entries, domain.DocEntry{
			Name:       name,
			Category:   category,
			Summary:    summary,
			Body:       bodyText,
			Tags:       domain.TagSet(rec.name, category, bodyText),
			NameTokens: domain.Tokenize(rec.name),
		})
	}

	return entries, nil
}

// ParseConcepts parses the design-concept text into entries.
func ParseConcepts(data []byte) ([]domain.ConceptEntry, error) {
	records, err := splitRecords(data, "concepts")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	entries := make([]domain.ConceptEntry, 0, len(records))

	for _, rec := range records {
		name := domain.NormalizeName(rec.name)
		if _, dup := seen[name]; dup {
			return nil, &domain.CorpusFormatError{
				Source: "concepts",
				Line:   rec.line,
				Record: rec.name,
				Reason: "duplicate name",
			}
		}
		seen[name] = struct{}{}

		entry := domain.ConceptEntry{
			Name:        name,
			DisplayName: rec.name,
		}

		for _, line := range rec.lines {
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
			case strings.HasPrefix(trimmed, "Description:"):
				entry.Description = strings.TrimSpace(strings.TrimPrefix(trimmed, "Description:"))
			case strings.HasPrefix(trimmed, "Classes:"):
				entry.StyleRules = splitClasses(strings.TrimPrefix(trimmed, "Classes:"))
			case strings.HasPrefix(trimmed, "Suggestion:"):
				entry.Suggestion = strings.TrimSpace(strings.TrimPrefix(trimmed, "Suggestion:"))
			case strings.HasPrefix(trimmed, "Snippet:"):
				entry.Snippet = strings.TrimSpace(strings.TrimPrefix(trimmed, "Snippet:"))
			default:
				// Continuation of the description.
				if entry.Description != "" {
					entry.Description += " " + trimmed
				} else {
					entry.Description = trimmed
				}
			}
		}

		if entry.Description == "" {
			return nil, &domain.CorpusFormatError{
				Source: "concepts",
				Line:   rec.line,
				Record: rec.name,
				Reason: "missing description",
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// splitClasses splits a comma-separated class list, preserving tokens
// like responsive prefixes ("md:").
func splitClasses(s string) []string {
	parts := strings.Split(s, ",")
	classes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			classes = append(classes, c)
		}
	}
	return classes
}
