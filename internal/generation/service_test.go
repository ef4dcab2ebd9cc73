package generation

import (
	"context"
	"testing"

	"github.com/ainara-edu/teksplan/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response and records the last request.
type stubClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (c *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.response, Model: "stub"}, nil
}

func (c *stubClient) Available(context.Context) bool { return true }

const validPlanJSON = `{
  "title": "Fractions Week",
  "description": "A week on fractions.",
  "subject": "Math",
  "overarching_goals_standards": ["111.5.b.3.A"],
  "activities": [
    {
      "title": "Fraction Strips",
      "timeframe": "One class period",
      "student_will_statement": "Students will model equivalent fractions.",
      "assignment_description": "Build fraction strips from paper.",
      "evaluation_criteria": {
        "score_4_proficient": "All strips accurate.",
        "score_3_developing": "Most strips accurate.",
        "score_2_beginning": "Some strips accurate.",
        "score_1_not_yet": "Few strips accurate.",
        "score_0_no_participation": "Student submits blank work."
      },
      "activity_standards": ["111.5.b.3.A"],
      "ainara_activities": [
        {"title": "Quiz", "rationale": "Checks recall of equivalence rules."}
      ]
    }
  ],
  "notes": "Manipulatives recommended."
}`

const validActivityJSON = `{
  "title": "Fraction Strips",
  "timeframe": "One class period",
  "student_will_statement": "Students will model equivalent fractions.",
  "assignment_description": "Build fraction strips from paper.",
  "evaluation_criteria": {
    "score_4_proficient": "All strips accurate.",
    "score_3_developing": "Most strips accurate.",
    "score_2_beginning": "Some strips accurate.",
    "score_1_not_yet": "Few strips accurate.",
    "score_0_no_participation": "Student submits blank work."
  },
  "activity_standards": ["111.5.b.3.A"],
  "ainara_activities": [
    {"title": "Memory", "rationale": "Reinforces fraction pairs."}
  ]
}`

func TestDraftPlan_Success(t *testing.T) {
	client := &stubClient{response: validPlanJSON}
	svc := NewDraftService(client)

	plan, err := svc.DraftPlan(context.Background(), PlanRequest{
		Subject:      "Math",
		Topic:        "Fractions",
		StandardsCSV: `"111.5.b.3.A","Equivalent fractions","Math"`,
		Days:         1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Fractions Week", plan.Title)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, "Student submits blank work.",
		plan.Activities[0].EvaluationCriteria.Score0NoParticipation)
	require.Len(t, plan.Activities[0].AinaraActivities, 1)
	assert.Equal(t, "Quiz", plan.Activities[0].AinaraActivities[0].Title)

	assert.Equal(t, llm.TaskPlanDraft, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Subject: Math")
	assert.Contains(t, client.lastReq.UserPrompt, "Number of Days/Sessions: 1")
	assert.Contains(t, client.lastReq.UserPrompt, `"111.5.b.3.A"`)
}

func TestDraftPlan_FencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n" + validPlanJSON + "\n```"}
	svc := NewDraftService(client)

	plan, err := svc.DraftPlan(context.Background(), PlanRequest{Subject: "Math", Topic: "Fractions", Days: 1})
	require.NoError(t, err)
	assert.Equal(t, "Fractions Week", plan.Title)
}

func TestDraftPlan_SchemaViolationSurfaced(t *testing.T) {
	client := &stubClient{response: `{"title":"No activities here","description":"d","subject":"Math"}`}
	svc := NewDraftService(client)

	_, err := svc.DraftPlan(context.Background(), PlanRequest{Subject: "Math", Topic: "x", Days: 1})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestDraftPlan_UnparsableResponse(t *testing.T) {
	client := &stubClient{response: "Sorry, I cannot do that."}
	svc := NewDraftService(client)

	_, err := svc.DraftPlan(context.Background(), PlanRequest{Subject: "Math", Topic: "x", Days: 1})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestDraftPlan_ServiceFailureSurfaced(t *testing.T) {
	client := &stubClient{err: llm.ErrUnavailable}
	svc := NewDraftService(client)

	_, err := svc.DraftPlan(context.Background(), PlanRequest{Subject: "Math", Topic: "x", Days: 1})
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestDraftPlan_DayCountClampedToOne(t *testing.T) {
	client := &stubClient{response: validPlanJSON}
	svc := NewDraftService(client)

	_, err := svc.DraftPlan(context.Background(), PlanRequest{Subject: "Math", Topic: "x", Days: 0})
	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "Number of Days/Sessions: 1")
}

func TestDraftActivity_Success(t *testing.T) {
	client := &stubClient{response: validActivityJSON}
	svc := NewDraftService(client)

	act, err := svc.DraftActivity(context.Background(), ActivityRequest{
		Subject: "Math",
		Topic:   "Fractions",
	})

	require.NoError(t, err)
	assert.Equal(t, "Fraction Strips", act.Title)
	assert.Equal(t, llm.TaskActivityDraft, client.lastReq.Task)
}

func TestDraftActivity_MissingRubricLevelRejected(t *testing.T) {
	client := &stubClient{response: `{
		"title": "t", "timeframe": "tf",
		"student_will_statement": "s", "assignment_description": "a",
		"evaluation_criteria": {"score_4_proficient": "x"},
		"activity_standards": []
	}`}
	svc := NewDraftService(client)

	_, err := svc.DraftActivity(context.Background(), ActivityRequest{Subject: "Math", Topic: "x"})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
