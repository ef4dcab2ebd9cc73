package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/repository"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/ainara-edu/teksplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader serves a canned database regardless of subject.
type stubLoader struct {
	result      standards.LoadResult
	lastSubject string
}

func (l *stubLoader) Load(subject string) standards.LoadResult {
	l.lastSubject = subject
	return l.result
}

func newTestPlanService(t *testing.T, loader StandardsLoader) PlanService {
	t.Helper()
	db := testutil.NewTestDB(t)
	if loader == nil {
		loader = &stubLoader{result: standards.LoadResult{DB: make(standards.Database), Empty: true}}
	}
	return NewPlanService(repository.NewSQLitePlanRepo(db), loader)
}

func TestPlanService_CreateAssignsIdentity(t *testing.T) {
	svc := newTestPlanService(t, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, testutil.NewTestPlan("Cells"))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	fetched, err := svc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cells", fetched.Plan.Title)
}

func TestPlanService_ImportValidDocument(t *testing.T) {
	svc := newTestPlanService(t, nil)

	rec, err := svc.Import(context.Background(), []byte(`{
		"title": "Water Cycle",
		"description": "A two day unit.",
		"subject": "Science",
		"overarching_goals_standards": ["112.48.c.7.A"],
		"activities": []
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Water Cycle", rec.Plan.Title)
	assert.Equal(t, []string{"112.48.c.7.A"}, rec.Plan.OverarchingGoalsStandards)
}

func TestPlanService_ImportInvalidDocumentNotPersisted(t *testing.T) {
	svc := newTestPlanService(t, nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, []byte(`{"title": "", "description": "d", "subject": "s"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "activities")

	recs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestPlanService_ImportSyntaxError(t *testing.T) {
	svc := newTestPlanService(t, nil)

	_, err := svc.Import(context.Background(), []byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing plan document")
}

func TestPlanService_LoadExample(t *testing.T) {
	svc := newTestPlanService(t, nil)

	rec, err := svc.LoadExample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Science", rec.Plan.Subject)
	assert.Len(t, rec.Plan.Activities, 3)
}

func TestPlanService_ExportRoundTrip(t *testing.T) {
	svc := newTestPlanService(t, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, testutil.NewTestPlan("Energy",
		testutil.WithActivities(testutil.NewTestActivity("Circuits"))))
	require.NoError(t, err)

	data, err := svc.Export(ctx, rec.ID)
	require.NoError(t, err)

	var plan domain.LessonPlan
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Equal(t, "Energy", plan.Title)
	require.Len(t, plan.Activities, 1)
	assert.Equal(t, "Circuits", plan.Activities[0].Title)
}

func TestPlanService_MissingStandards(t *testing.T) {
	loader := &stubLoader{result: standards.LoadResult{DB: standards.Database{
		"112.48.c.7.A": {ID: "112.48.c.7.A", Description: "Known", Category: "Science"},
	}}}
	svc := newTestPlanService(t, loader)
	ctx := context.Background()

	rec, err := svc.Create(ctx, testutil.NewTestPlan("Space",
		testutil.WithSubject("Science"),
		testutil.WithGoals("112.48.c.7.A", "112.48.c.9.Z"),
		testutil.WithActivities(
			testutil.NewTestActivity("Orbit Model", testutil.WithStandards("112.48.c.9.Z", "113.1.a")),
		),
	))
	require.NoError(t, err)

	missing, result, err := svc.MissingStandards(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science", loader.lastSubject)
	assert.Equal(t, []string{"112.48.c.9.Z", "113.1.a"}, missing)
	assert.False(t, result.Empty)
}

func TestPlanService_MissingStandards_EmptyDatabaseReportsAll(t *testing.T) {
	svc := newTestPlanService(t, nil)
	ctx := context.Background()

	rec, err := svc.Create(ctx, testutil.NewTestPlan("Space",
		testutil.WithGoals("A.1.B")))
	require.NoError(t, err)

	missing, result, err := svc.MissingStandards(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.1.B"}, missing)
	assert.True(t, result.Empty)
}

func TestPlanService_DeleteMissingPlanFails(t *testing.T) {
	svc := newTestPlanService(t, nil)

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
