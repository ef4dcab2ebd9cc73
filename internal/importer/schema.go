// Package importer loads lesson-plan JSON documents and validates them
// against the minimal required schema before any state is touched.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ainara-edu/teksplan/internal/domain"
)

// PlanDocument is the wire form of a lesson plan. It is also the contract
// the external generation service must satisfy. Rubric levels are pointers
// so absence can be told apart from intentionally blank criteria.
type PlanDocument struct {
	Title                     string             `json:"title"`
	Description               string             `json:"description"`
	Subject                   string             `json:"subject"`
	OverarchingGoalsStandards []string           `json:"overarching_goals_standards"`
	Activities                []ActivityDocument `json:"activities"`
	Notes                     string             `json:"notes,omitempty"`
}

// ActivityDocument is the wire form of a single activity.
type ActivityDocument struct {
	Title                 string                   `json:"title"`
	Timeframe             string                   `json:"timeframe"`
	StudentWillStatement  string                   `json:"student_will_statement"`
	AssignmentDescription string                   `json:"assignment_description"`
	EvaluationCriteria    *RubricDocument          `json:"evaluation_criteria"`
	ActivityStandards     []string                 `json:"activity_standards"`
	AinaraActivities      []AinaraActivityDocument `json:"ainara_activities,omitempty"`
}

// RubricDocument is the wire form of the five-level rubric.
type RubricDocument struct {
	Score4Proficient      *string `json:"score_4_proficient"`
	Score3Developing      *string `json:"score_3_developing"`
	Score2Beginning       *string `json:"score_2_beginning"`
	Score1NotYet          *string `json:"score_1_not_yet"`
	Score0NoParticipation *string `json:"score_0_no_participation"`
}

// AinaraActivityDocument is a suggested platform activity.
type AinaraActivityDocument struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

// ParseDocument parses raw JSON into a PlanDocument. Syntax errors are
// surfaced to the caller; nothing is validated here.
func ParseDocument(data []byte) (*PlanDocument, error) {
	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing lesson plan JSON: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and parses a lesson plan JSON file.
func LoadDocument(path string) (*PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// ToDomain converts a validated document into the domain model. Rubric
// levels already checked present by ValidateDocument collapse to plain
// strings.
func (d *PlanDocument) ToDomain() domain.LessonPlan {
	plan := domain.LessonPlan{
		Title:                     d.Title,
		Description:               d.Description,
		Subject:                   d.Subject,
		OverarchingGoalsStandards: append([]string(nil), d.OverarchingGoalsStandards...),
		Notes:                     d.Notes,
	}
	for _, a := range d.Activities {
		plan.Activities = append(plan.Activities, a.ToDomain())
	}
	return plan
}

// ToDomain converts a single activity document.
func (a *ActivityDocument) ToDomain() domain.Activity {
	act := domain.Activity{
		Title:                 a.Title,
		Timeframe:             a.Timeframe,
		StudentWillStatement:  a.StudentWillStatement,
		AssignmentDescription: a.AssignmentDescription,
		ActivityStandards:     append([]string(nil), a.ActivityStandards...),
	}
	if a.EvaluationCriteria != nil {
		act.EvaluationCriteria = domain.Rubric{
			Score4Proficient:      deref(a.EvaluationCriteria.Score4Proficient),
			Score3Developing:      deref(a.EvaluationCriteria.Score3Developing),
			Score2Beginning:       deref(a.EvaluationCriteria.Score2Beginning),
			Score1NotYet:          deref(a.EvaluationCriteria.Score1NotYet),
			Score0NoParticipation: deref(a.EvaluationCriteria.Score0NoParticipation),
		}
	}
	for _, aa := range a.AinaraActivities {
		act.AinaraActivities = append(act.AinaraActivities, domain.AinaraActivity{
			Title:     aa.Title,
			Rationale: aa.Rationale,
		})
	}
	return act
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
