package domain

import "time"

// Rubric is the fixed five-level evaluation scale attached to every
// activity. All five levels are always present; an empty string means the
// author left the criteria blank, not that the level is missing.
type Rubric struct {
	Score4Proficient      string `json:"score_4_proficient"`
	Score3Developing      string `json:"score_3_developing"`
	Score2Beginning       string `json:"score_2_beginning"`
	Score1NotYet          string `json:"score_1_not_yet"`
	Score0NoParticipation string `json:"score_0_no_participation"`
}

// RubricLevel pairs a score with its display label and criteria text.
type RubricLevel struct {
	Score    int
	Label    string
	Criteria string
}

// Levels returns the rubric rows in descending score order for display.
func (r Rubric) Levels() []RubricLevel {
	return []RubricLevel{
		{Score: 4, Label: "Proficient", Criteria: r.Score4Proficient},
		{Score: 3, Label: "Developing", Criteria: r.Score3Developing},
		{Score: 2, Label: "Beginning", Criteria: r.Score2Beginning},
		{Score: 1, Label: "Not Yet", Criteria: r.Score1NotYet},
		{Score: 0, Label: "No Participation", Criteria: r.Score0NoParticipation},
	}
}

// AinaraActivity is a suggested platform activity attached to a lesson
// activity by the generation service. Display/audit only; suggestions are
// not validated against any catalog.
type AinaraActivity struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

// Activity is one lesson segment. ActivityStandards is ordered, order is
// display order, and duplicates are permitted.
type Activity struct {
	Title                 string           `json:"title"`
	Timeframe             string           `json:"timeframe"`
	StudentWillStatement  string           `json:"student_will_statement"`
	AssignmentDescription string           `json:"assignment_description"`
	EvaluationCriteria    Rubric           `json:"evaluation_criteria"`
	ActivityStandards     []string         `json:"activity_standards"`
	AinaraActivities      []AinaraActivity `json:"ainara_activities,omitempty"`
}

// LessonPlan is the root document. Activity numbering is 1-based positional:
// reordering or deleting an activity renumbers display positions but never
// mutates an activity's own fields.
type LessonPlan struct {
	Title                     string     `json:"title"`
	Description               string     `json:"description"`
	Subject                   string     `json:"subject"`
	OverarchingGoalsStandards []string   `json:"overarching_goals_standards"`
	Activities                []Activity `json:"activities"`
	Notes                     string     `json:"notes,omitempty"`
}

// MoveActivity moves the activity at index from to index to, shifting the
// activities in between. Out-of-range indices are a no-op.
func (p *LessonPlan) MoveActivity(from, to int) {
	n := len(p.Activities)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	a := p.Activities[from]
	if from < to {
		copy(p.Activities[from:to], p.Activities[from+1:to+1])
	} else {
		copy(p.Activities[to+1:from+1], p.Activities[to:from])
	}
	p.Activities[to] = a
}

// RemoveActivity deletes the activity at index i. Out-of-range is a no-op.
func (p *LessonPlan) RemoveActivity(i int) {
	if i < 0 || i >= len(p.Activities) {
		return
	}
	p.Activities = append(p.Activities[:i], p.Activities[i+1:]...)
}

// ReferencedStandards returns every standard ID the plan cites, plan-level
// goals first, then each activity's standards in activity order. Duplicates
// are preserved; callers that need a unique set deduplicate themselves.
func (p *LessonPlan) ReferencedStandards() []string {
	var ids []string
	ids = append(ids, p.OverarchingGoalsStandards...)
	for _, a := range p.Activities {
		ids = append(ids, a.ActivityStandards...)
	}
	return ids
}

// PlanRecord is a persisted lesson plan with its storage identity.
// The document itself carries no ID; identity belongs to the store.
type PlanRecord struct {
	ID        string
	Plan      LessonPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}
