package standards

import "github.com/ainara-edu/teksplan/internal/domain"

// MissingReferences walks every standard ID the plan cites and returns the
// ones absent from db, duplicate-free, in first-seen order: plan-level
// goals first, then each activity's standards in activity order. The
// traversal order exists only so output is deterministic and reproducible.
//
// The check is advisory. Missing references warn the consumer; they never
// block saving or continuing.
func MissingReferences(plan *domain.LessonPlan, db Database) []string {
	missing := []string{}
	seen := make(map[string]bool)

	for _, id := range plan.ReferencedStandards() {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := db.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}

	return missing
}
