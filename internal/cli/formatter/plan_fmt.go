package formatter

import (
	"fmt"
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/standards"
)

// FormatPlanList renders stored plans as an aligned table.
func FormatPlanList(recs []*domain.PlanRecord) string {
	if len(recs) == 0 {
		return Dim("No lesson plans stored. Import one with 'plan load' or seed with 'plan example'.")
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			shortID(rec.ID),
			rec.Plan.Title,
			rec.Plan.Subject,
			fmt.Sprintf("%d", len(rec.Plan.Activities)),
			rec.UpdatedAt.Format("2006-01-02"),
		})
	}
	return RenderTable([]string{"ID", "Title", "Subject", "Activities", "Updated"}, rows)
}

// FormatPlanDetail renders a full plan with activities, rubrics, and
// standard pills resolved against db.
func FormatPlanDetail(rec *domain.PlanRecord, db standards.Database) string {
	var b strings.Builder
	plan := &rec.Plan

	b.WriteString(Header(plan.Title))
	b.WriteString("\n")
	b.WriteString(plan.Description)
	b.WriteString("\n\n")
	b.WriteString(Bold("Subject: ") + plan.Subject + "\n")
	b.WriteString(Dim("ID: "+rec.ID) + "\n")

	if len(plan.OverarchingGoalsStandards) > 0 {
		b.WriteString("\n" + Bold("Overarching Goals / Standards") + "\n")
		for _, id := range plan.OverarchingGoalsStandards {
			b.WriteString("  " + pillFor(id, db) + "\n")
		}
	}

	for i, a := range plan.Activities {
		b.WriteString("\n")
		b.WriteString(formatActivity(i+1, &a, db))
	}

	if plan.Notes != "" {
		b.WriteString("\n" + Bold("Notes") + "\n" + plan.Notes + "\n")
	}

	return b.String()
}

// FormatActivity renders a single activity with 1-based position n.
func FormatActivity(n int, a *domain.Activity, db standards.Database) string {
	return formatActivity(n, a, db)
}

func formatActivity(n int, a *domain.Activity, db standards.Database) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Activity %d: %s", n, a.Title)) + "\n")
	b.WriteString(Dim(a.Timeframe) + "\n\n")
	b.WriteString(Bold("The student will ") + a.StudentWillStatement + "\n\n")
	b.WriteString(a.AssignmentDescription + "\n")

	if len(a.ActivityStandards) > 0 {
		b.WriteString("\n" + Bold("Standards") + "\n")
		for _, id := range a.ActivityStandards {
			b.WriteString("  " + pillFor(id, db) + "\n")
		}
	}

	b.WriteString("\n" + Bold("Evaluation Criteria") + "\n")
	b.WriteString(formatRubric(a.EvaluationCriteria))

	if len(a.AinaraActivities) > 0 {
		b.WriteString("\n" + Bold("Suggested AINARA Activities") + "\n")
		for _, aa := range a.AinaraActivities {
			b.WriteString("  " + StylePurple.Render(aa.Title) + "\n")
			b.WriteString("    " + Dim(aa.Rationale) + "\n")
		}
	}

	return b.String()
}

func formatRubric(r domain.Rubric) string {
	rows := make([][]string, 0, 5)
	for _, level := range r.Levels() {
		criteria := level.Criteria
		if criteria == "" {
			criteria = Dim("(blank)")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", level.Score),
			level.Label,
			criteria,
		})
	}
	return RenderTable([]string{"Score", "Level", "Criteria"}, rows)
}

// FormatMissingReport renders the cross-reference result for a plan.
func FormatMissingReport(rec *domain.PlanRecord, missing []string, result standards.LoadResult) string {
	var b strings.Builder

	b.WriteString(Header("Standards Check: " + rec.Plan.Title))
	b.WriteString("\n")
	b.WriteString(FormatLoadResult(result))
	b.WriteString("\n")

	if len(missing) == 0 {
		b.WriteString(StyleGreen.Render("All referenced standards resolved.") + "\n")
		return b.String()
	}

	b.WriteString(StyleRed.Render(fmt.Sprintf("%d referenced standard(s) not found:", len(missing))) + "\n")
	for _, id := range missing {
		b.WriteString("  " + StandardPill(id, "", false) + "\n")
	}
	b.WriteString("\n" + Dim("Advisory only; the plan is stored regardless.") + "\n")
	return b.String()
}

func pillFor(id string, db standards.Database) string {
	def, ok := db.Lookup(id)
	if !ok {
		return StandardPill(id, "", false)
	}
	return StandardPill(id, def.Description, true)
}

// shortID returns the first UUID segment, enough to disambiguate locally.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
