// Package standards loads and queries TEKS curriculum-standard definitions
// from delimited text sources.
package standards

import (
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// Placeholder values substituted when a source row omits a column.
const (
	DefaultDescription = "No description provided"
	DefaultCategory    = "General"
)

// csvHeaderIDs and tsvHeaderIDs are first-column values (lowercased) that
// mark a header row rather than a standard.
var (
	csvHeaderIDs = map[string]bool{"id": true, "standard": true}
	tsvHeaderIDs = map[string]bool{"id": true, "new id": true}
)

// ParseCSV parses comma-delimited standards text of the form
// ID,Description[,Category]. Quoted fields may contain embedded commas; the
// surrounding quotes are stripped. Malformed rows are skipped, never fatal:
// the result may be empty but ParseCSV does not fail.
//
// IDs whose trimmed length is 2 characters or fewer are dropped. This is a
// deliberate noise filter against malformed rows, not an error.
func ParseCSV(text string) Database {
	db := make(Database)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cols := splitCSVColumns(line)
		if len(cols) < 2 {
			continue
		}

		id := strings.TrimSpace(cols[0])
		if csvHeaderIDs[strings.ToLower(id)] {
			continue
		}
		if len(id) <= 2 {
			continue
		}

		def := domain.StandardDefinition{
			ID:          id,
			Description: DefaultDescription,
			Category:    DefaultCategory,
		}
		if cols[1] != "" {
			def.Description = cols[1]
		}
		if len(cols) >= 3 && cols[2] != "" {
			def.Category = cols[2]
		}

		// Last occurrence wins on duplicate IDs.
		db[id] = def
	}

	return db
}

// ParseTSV parses tab-delimited standards text of the form
// ID<TAB>Flag<TAB>Description<TAB>Grade. A flag of exactly "f" marks a
// folder/grouping row. The grade column is read but intentionally not
// retained. The tab source carries no category column, so Category is
// always the placeholder. Row-level problems skip the row, never abort.
func ParseTSV(text string) Database {
	db := make(Database)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			continue
		}

		id := strings.TrimSpace(cols[0])
		if id == "" || tsvHeaderIDs[strings.ToLower(id)] {
			continue
		}

		description := strings.TrimSpace(cols[2])
		if description == "" {
			description = DefaultDescription
		}

		db[id] = domain.StandardDefinition{
			ID:          id,
			Description: description,
			Category:    DefaultCategory,
			IsFolder:    strings.TrimSpace(cols[1]) == "f",
		}
	}

	return db
}

// Parse dispatches on the source format.
func Parse(text string, format domain.SourceFormat) Database {
	if format == domain.FormatTSV {
		return ParseTSV(text)
	}
	return ParseCSV(text)
}

// splitCSVColumns splits one line into columns. A quoted span is one atomic
// column with its quotes stripped; everything else splits on commas.
// Pure-whitespace artifacts are discarded.
func splitCSVColumns(line string) []string {
	var cols []string
	i := 0
	n := len(line)

	for i < n {
		// Skip leading whitespace before a column.
		for i < n && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}

		var col string
		if line[i] == '"' {
			end := strings.IndexByte(line[i+1:], '"')
			if end == -1 {
				// Unterminated quote: take the rest of the line.
				col = line[i+1:]
				i = n
			} else {
				col = line[i+1 : i+1+end]
				i = i + 1 + end + 1
			}
			// Advance past the next comma, if any.
			if next := strings.IndexByte(line[i:], ','); next != -1 {
				i += next + 1
			} else {
				i = n
			}
		} else {
			next := strings.IndexByte(line[i:], ',')
			if next == -1 {
				col = line[i:]
				i = n
			} else {
				col = line[i : i+next]
				i += next + 1
			}
		}

		col = strings.TrimSpace(col)
		if col != "" {
			cols = append(cols, col)
		}
	}

	return cols
}
