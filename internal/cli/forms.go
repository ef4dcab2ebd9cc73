package cli

import (
	"context"
	"fmt"

	"github.com/ainara-edu/teksplan/internal/cli/formatter"
	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func teksplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// editPlanForm builds a huh form over the plan's metadata fields. The
// activity list is edited through the interactive viewer, not here.
func editPlanForm(plan *domain.LessonPlan) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&plan.Title).
				Validate(requireNonEmpty("title")),
			huh.NewText().
				Title("Description").
				Value(&plan.Description).
				Lines(3),
			huh.NewInput().
				Title("Subject").
				Description("Free text; resolved to a standards source on load").
				Value(&plan.Subject).
				Validate(requireNonEmpty("subject")),
			huh.NewText().
				Title("Notes").
				Value(&plan.Notes).
				Lines(3),
		),
	).WithTheme(teksplanHuhTheme()).WithShowHelp(false)
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func newPlanEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit plan metadata in a form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("plan edit requires an interactive terminal")
			}

			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			rec, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if err := editPlanForm(&rec.Plan).Run(); err != nil {
				return err
			}
			if err := app.Plans.Update(ctx, rec); err != nil {
				return err
			}
			fmt.Printf("Updated plan %q\n", rec.Plan.Title)
			return nil
		},
	}
}
