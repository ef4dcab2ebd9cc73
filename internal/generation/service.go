// Package generation drafts lesson plans and activities through the
// external generation service. Responses are validated against the
// document schema before anything is handed to the caller; on failure no
// partial state escapes.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/importer"
	"github.com/ainara-edu/teksplan/internal/llm"
)

// PlanRequest asks for a full multi-day lesson plan.
type PlanRequest struct {
	Subject      string
	Topic        string
	StandardsCSV string // pre-filtered standards text for the prompt
	Days         int
}

// ActivityRequest asks for a single activity.
type ActivityRequest struct {
	Subject      string
	Topic        string
	StandardsCSV string
}

// DraftService produces schema-valid lesson plans and activities from the
// generation service.
type DraftService interface {
	DraftPlan(ctx context.Context, req PlanRequest) (domain.LessonPlan, error)
	DraftActivity(ctx context.Context, req ActivityRequest) (domain.Activity, error)
}

type draftService struct {
	client llm.Client
}

// NewDraftService creates a DraftService backed by a generation client.
func NewDraftService(client llm.Client) DraftService {
	return &draftService{client: client}
}

func (s *draftService) DraftPlan(ctx context.Context, req PlanRequest) (domain.LessonPlan, error) {
	days := req.Days
	if days < 1 {
		days = 1
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlanDraft,
		SystemPrompt: planDraftSystemPrompt,
		UserPrompt:   buildPlanPrompt(req.Subject, req.Topic, req.StandardsCSV, days),
	})
	if err != nil {
		return domain.LessonPlan{}, fmt.Errorf("drafting lesson plan: %w", err)
	}

	doc, err := llm.ExtractJSON[importer.PlanDocument](resp.Text, validatePlanResponse)
	if err != nil {
		return domain.LessonPlan{}, fmt.Errorf("drafting lesson plan: %w", err)
	}

	return doc.ToDomain(), nil
}

func (s *draftService) DraftActivity(ctx context.Context, req ActivityRequest) (domain.Activity, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskActivityDraft,
		SystemPrompt: activityDraftSystemPrompt,
		UserPrompt:   buildActivityPrompt(req.Subject, req.Topic, req.StandardsCSV),
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("drafting activity: %w", err)
	}

	doc, err := llm.ExtractJSON[importer.ActivityDocument](resp.Text, validateActivityResponse)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("drafting activity: %w", err)
	}

	return doc.ToDomain(), nil
}

func buildPlanPrompt(subject, topic, standardsCSV string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Number of Days/Sessions: %d\n\n", days)
	fmt.Fprintf(&b, "Standards CSV Content:\n%s\n\n", standardsCSV)
	fmt.Fprintf(&b, "Generate a lesson plan for the above subject and topic, spanning exactly %d days/sessions, using the provided standards.", days)
	return b.String()
}

func buildActivityPrompt(subject, topic, standardsCSV string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	fmt.Fprintf(&b, "Standards CSV Content:\n%s\n\n", standardsCSV)
	b.WriteString("Generate a single activity for the above subject and topic, using the provided standards.")
	return b.String()
}

func validatePlanResponse(doc importer.PlanDocument) error {
	if errs := importer.ValidateDocument(&doc); len(errs) > 0 {
		return errs[0]
	}
	if len(doc.Activities) == 0 {
		return fmt.Errorf("drafted plan has no activities")
	}
	return nil
}

func validateActivityResponse(doc importer.ActivityDocument) error {
	if errs := importer.ValidateActivity("activity", &doc); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
