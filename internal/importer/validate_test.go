package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func validRubric() *RubricDocument {
	return &RubricDocument{
		Score4Proficient:      ptrStr("excellent work"),
		Score3Developing:      ptrStr("good work"),
		Score2Beginning:       ptrStr("partial work"),
		Score1NotYet:          ptrStr("minimal work"),
		Score0NoParticipation: ptrStr("blank work"),
	}
}

func validActivity() ActivityDocument {
	return ActivityDocument{
		Title:                 "Solar System Walk",
		Timeframe:             "One class period",
		StudentWillStatement:  "Students will model planetary distances.",
		AssignmentDescription: "Build a scale model in the hallway.",
		EvaluationCriteria:    validRubric(),
		ActivityStandards:     []string{"112.48.c.7.C"},
	}
}

func validDocument() *PlanDocument {
	return &PlanDocument{
		Title:                     "Solar System Unit",
		Description:               "Three days on the solar system.",
		Subject:                   "Science",
		OverarchingGoalsStandards: []string{"112.48.c.7.C"},
		Activities:                []ActivityDocument{validActivity()},
	}
}

func errorMessages(errs []error) []string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

func TestValidateDocument_Valid(t *testing.T) {
	assert.Empty(t, ValidateDocument(validDocument()))
}

func TestValidateDocument_EmptyActivitiesListIsValid(t *testing.T) {
	doc := validDocument()
	doc.Activities = []ActivityDocument{}
	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateDocument_MissingTopLevelFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *PlanDocument)
		wantMsg string
	}{
		{"missing title", func(d *PlanDocument) { d.Title = "" }, "title is required"},
		{"missing description", func(d *PlanDocument) { d.Description = "" }, "description is required"},
		{"missing subject", func(d *PlanDocument) { d.Subject = "" }, "subject is required"},
		{"missing activities", func(d *PlanDocument) { d.Activities = nil }, "activities is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			errs := ValidateDocument(doc)
			assert.Contains(t, errorMessages(errs), tt.wantMsg)
		})
	}
}

func TestValidateDocument_MissingActivitiesIdentifiedInJSON(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"title":"T","description":"D","subject":"Science"}`))
	require.NoError(t, err)

	errs := ValidateDocument(doc)
	require.NotEmpty(t, errs)
	assert.Contains(t, errorMessages(errs), "activities is required")
}

func TestValidateActivity_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *ActivityDocument)
		wantMsg string
	}{
		{"missing title", func(a *ActivityDocument) { a.Title = "" }, "activities[0].title is required"},
		{"missing timeframe", func(a *ActivityDocument) { a.Timeframe = "" }, "activities[0].timeframe is required"},
		{"missing statement", func(a *ActivityDocument) { a.StudentWillStatement = "" }, "activities[0].student_will_statement is required"},
		{"missing assignment", func(a *ActivityDocument) { a.AssignmentDescription = "" }, "activities[0].assignment_description is required"},
		{"missing standards", func(a *ActivityDocument) { a.ActivityStandards = nil }, "activities[0].activity_standards is required"},
		{"missing rubric", func(a *ActivityDocument) { a.EvaluationCriteria = nil }, "activities[0].evaluation_criteria is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc.Activities[0])
			errs := ValidateDocument(doc)
			assert.Contains(t, errorMessages(errs), tt.wantMsg)
		})
	}
}

func TestValidateActivity_RubricLevels(t *testing.T) {
	doc := validDocument()
	doc.Activities[0].EvaluationCriteria.Score1NotYet = nil
	errs := ValidateDocument(doc)
	assert.Contains(t, errorMessages(errs),
		"activities[0].evaluation_criteria.score_1_not_yet is required")
}

func TestValidateActivity_BlankRubricCriteriaPermitted(t *testing.T) {
	doc := validDocument()
	doc.Activities[0].EvaluationCriteria.Score2Beginning = ptrStr("")
	assert.Empty(t, ValidateDocument(doc))
}

func TestValidateActivity_AinaraSuggestionsNeedTitleAndRationale(t *testing.T) {
	doc := validDocument()
	doc.Activities[0].AinaraActivities = []AinaraActivityDocument{
		{Title: "Quiz"},
	}
	errs := ValidateDocument(doc)
	assert.Contains(t, errorMessages(errs),
		"activities[0].ainara_activities[0].rationale is required")
}

func TestValidateDocument_AccumulatesAllErrors(t *testing.T) {
	doc := &PlanDocument{}
	errs := ValidateDocument(doc)
	assert.GreaterOrEqual(t, len(errs), 4)
}

func TestParseDocument_SyntaxError(t *testing.T) {
	_, err := ParseDocument([]byte(`{"title": `))
	assert.Error(t, err)
}

func TestToDomain_RoundTrip(t *testing.T) {
	doc := validDocument()
	doc.Notes = "adapt for physics"

	plan := doc.ToDomain()
	assert.Equal(t, "Solar System Unit", plan.Title)
	assert.Equal(t, "Science", plan.Subject)
	assert.Equal(t, "adapt for physics", plan.Notes)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, "excellent work", plan.Activities[0].EvaluationCriteria.Score4Proficient)
	assert.Equal(t, []string{"112.48.c.7.C"}, plan.Activities[0].ActivityStandards)
}

func TestExamplePlan_LoadsAndValidates(t *testing.T) {
	plan, err := ExamplePlan()
	require.NoError(t, err)
	assert.Equal(t, "Science", plan.Subject)
	assert.Len(t, plan.Activities, 3)
	assert.NotEmpty(t, plan.Activities[0].EvaluationCriteria.Score0NoParticipation)
}
