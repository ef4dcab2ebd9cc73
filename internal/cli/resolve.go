package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// resolvePlanID maps user input to a stored plan ID. Empty input resolves
// to the most recently updated plan.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	recs, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("no lesson plans stored")
	}

	if input == "" {
		latest := recs[0]
		for _, rec := range recs[1:] {
			if rec.UpdatedAt.After(latest.UpdatedAt) {
				latest = rec
			}
		}
		return latest.ID, nil
	}

	// 1. Exact UUID match
	for _, rec := range recs {
		if rec.ID == input {
			return rec.ID, nil
		}
	}

	// 2. UUID prefix match
	var matches []*domain.PlanRecord
	for _, rec := range recs {
		if strings.HasPrefix(rec.ID, input) {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("lesson plan not found: %q", input)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
