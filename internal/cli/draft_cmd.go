package cli

import (
	"context"
	"fmt"

	"github.com/ainara-edu/teksplan/internal/cli/formatter"
	"github.com/ainara-edu/teksplan/internal/generation"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/spf13/cobra"
)

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft plans and activities through the generation service",
	}

	cmd.AddCommand(
		newDraftPlanCmd(app),
		newDraftActivityCmd(app),
	)

	return cmd
}

func requireDrafts(app *App) error {
	if app.Drafts == nil {
		return fmt.Errorf("generation service is disabled (set TEKSPLAN_LLM_ENABLED=true)")
	}
	return nil
}

// standardsCSVFor loads the subject's database and renders it as CSV for
// the prompt, pre-filtered by the subject's ID prefix when one is known.
func standardsCSVFor(app *App, subject string) string {
	result := app.Session.Load(subject)
	db := result.DB
	if prefix := standards.PrefixForSubject(subject); prefix != "" {
		db = standards.FilterByPrefix(db, prefix)
	}
	return db.RenderCSV()
}

func newDraftPlanCmd(app *App) *cobra.Command {
	var subject, topic string
	var days int
	var noSave bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Draft a full lesson plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDrafts(app); err != nil {
				return err
			}

			ctx := context.Background()
			plan, err := app.Drafts.DraftPlan(ctx, generation.PlanRequest{
				Subject:      subject,
				Topic:        topic,
				StandardsCSV: standardsCSVFor(app, subject),
				Days:         days,
			})
			if err != nil {
				return err
			}

			if noSave {
				fmt.Printf("Drafted %q (%d activities), not saved\n", plan.Title, len(plan.Activities))
				return nil
			}

			rec, err := app.Plans.Create(ctx, plan)
			if err != nil {
				return err
			}
			fmt.Printf("Drafted %q (%d activities) as %s\n",
				rec.Plan.Title, len(rec.Plan.Activities), rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject for the plan")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic to cover")
	cmd.Flags().IntVar(&days, "days", 3, "Number of days/sessions")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Display without persisting")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("topic")
	return cmd
}

func newDraftActivityCmd(app *App) *cobra.Command {
	var subject, topic, planID string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Draft a single activity, optionally appending it to a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireDrafts(app); err != nil {
				return err
			}

			ctx := context.Background()
			activity, err := app.Drafts.DraftActivity(ctx, generation.ActivityRequest{
				Subject:      subject,
				Topic:        topic,
				StandardsCSV: standardsCSVFor(app, subject),
			})
			if err != nil {
				return err
			}

			if planID == "" {
				fmt.Println(formatter.FormatActivity(1, &activity, app.Session.DB()))
				return nil
			}

			id, err := resolvePlanID(ctx, app, planID)
			if err != nil {
				return err
			}
			rec, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			rec.Plan.Activities = append(rec.Plan.Activities, activity)
			if err := app.Plans.Update(ctx, rec); err != nil {
				return err
			}
			fmt.Printf("Appended %q to plan %q as activity %d\n",
				activity.Title, rec.Plan.Title, len(rec.Plan.Activities))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject for the activity")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic to cover")
	cmd.Flags().StringVar(&planID, "plan", "", "Plan to append the drafted activity to")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("topic")
	return cmd
}
