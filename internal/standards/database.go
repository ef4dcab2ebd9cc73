package standards

import (
	"sort"
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// Database maps a standard ID to its definition. The key always equals the
// definition's ID field. A database is built fresh per load and replaced
// wholesale when the active subject changes; it is never merged or
// partially updated.
type Database map[string]domain.StandardDefinition

// Lookup returns the definition for id. Absence is an expected, common case
// given free-text source data, so it is reported through the bool, not an
// error.
func (db Database) Lookup(id string) (domain.StandardDefinition, bool) {
	def, ok := db[id]
	return def, ok
}

// IDs returns all keys in lexicographic order. Insertion order in the
// source carries no meaning, so a stable order is imposed for display.
func (db Database) IDs() []string {
	ids := make([]string, 0, len(db))
	for id := range db {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FilterByPrefix returns a new database containing only entries whose ID
// starts with prefix. An empty prefix means "no filter" and returns db
// unchanged.
func FilterByPrefix(db Database, prefix string) Database {
	if prefix == "" {
		return db
	}
	out := make(Database)
	for id, def := range db {
		if strings.HasPrefix(id, prefix) {
			out[id] = def
		}
	}
	return out
}

// RenderCSV serializes the database back into comma-delimited text, one
// quoted ID,Description,Category row per entry in ID order. Used to embed
// standards context into generation prompts.
func (db Database) RenderCSV() string {
	var b strings.Builder
	for _, id := range db.IDs() {
		def := db[id]
		b.WriteString(`"` + def.ID + `","` + def.Description + `","` + def.Category + `"` + "\n")
	}
	return b.String()
}
