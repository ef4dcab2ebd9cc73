package standards

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// GenericStem is the combined fallback source tried when the per-subject
// file cannot be read.
const GenericStem = "teks"

// LoadResult reports where a standards database came from. Loading never
// fails outright: when both the subject source and the generic fallback
// are unavailable the result is an empty database, a correct and intended
// degraded state in which every reference reports as missing.
type LoadResult struct {
	DB           Database
	Path         string // file actually read; empty when no source was found
	Stem         string // resolved file stem for the subject
	UsedFallback bool   // true when the generic source was read instead
	Empty        bool   // true when no source could be read at all
}

// FileSource loads standards databases from delimited text files in a
// directory. Both .csv and .tsv variants are recognized, by extension.
type FileSource struct {
	Dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Load resolves subject to a source file and parses it, falling back to
// the generic combined source and finally to an empty database.
func (s *FileSource) Load(subject string) LoadResult {
	stem := SourceForSubject(subject)

	if db, path, ok := s.readStem(stem); ok {
		return LoadResult{DB: db, Path: path, Stem: stem}
	}
	if db, path, ok := s.readStem(GenericStem); ok {
		return LoadResult{DB: db, Path: path, Stem: stem, UsedFallback: true}
	}
	return LoadResult{DB: make(Database), Stem: stem, Empty: true}
}

// LoadFile parses a single source file, picking the parser by extension.
func LoadFile(path string) (Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), formatForPath(path)), nil
}

func (s *FileSource) readStem(stem string) (Database, string, bool) {
	for _, ext := range []string{".csv", ".tsv"} {
		path := filepath.Join(s.Dir, stem+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Parse(string(data), formatForPath(path)), path, true
	}
	return nil, "", false
}

func formatForPath(path string) domain.SourceFormat {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return domain.FormatTSV
	}
	return domain.FormatCSV
}
