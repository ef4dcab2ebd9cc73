package formatter

import (
	"fmt"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/standards"
)

// FormatLoadResult summarizes where a standards database came from.
func FormatLoadResult(result standards.LoadResult) string {
	switch {
	case result.Empty:
		return StyleYellow.Render(fmt.Sprintf(
			"No standards source found for %q; using an empty database.", result.Stem))
	case result.UsedFallback:
		return StyleYellow.Render(fmt.Sprintf(
			"No %q source; loaded %d standards from the generic source (%s).",
			result.Stem, len(result.DB), result.Path))
	default:
		return StyleGreen.Render(fmt.Sprintf(
			"Loaded %d standards from %s.", len(result.DB), result.Path))
	}
}

// FormatLookup renders a single standard lookup as a pill plus detail lines.
func FormatLookup(id string, def domain.StandardDefinition, found bool) string {
	if !found {
		return StandardPill(id, "", false)
	}
	out := StandardPill(id, def.Description, true)
	out += "\n" + Dim("Category: "+def.Category)
	if def.IsFolder {
		out += "\n" + Dim("Marked as a grouping folder, not an individual standard.")
	}
	return out
}
