package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ainara-edu/teksplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage stored lesson plans",
	}

	cmd.AddCommand(
		newPlanLoadCmd(app),
		newPlanExampleCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanRemoveCmd(app),
		newPlanExportCmd(app),
		newPlanValidateCmd(app),
		newPlanEditCmd(app),
	)

	return cmd
}

func newPlanLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Import a lesson plan from a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			rec, err := app.Plans.Import(context.Background(), data)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %q (%d activities) as %s\n",
				rec.Plan.Title, len(rec.Plan.Activities), rec.ID)
			return nil
		},
	}
}

func newPlanExampleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Load the built-in example plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Plans.LoadExample(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Loaded example plan %q as %s\n", rec.Plan.Title, rec.ID)
			return nil
		},
	}
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored lesson plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPlanList(recs))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a lesson plan with resolved standards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			rec, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			result := app.Session.Load(rec.Plan.Subject)
			fmt.Println(formatter.FormatPlanDetail(rec, result.DB))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a stored lesson plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted plan %s\n", id)
			return nil
		},
	}
}

func newPlanExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a lesson plan as a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			data, err := app.Plans.Export(ctx, id)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Printf("Exported plan to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}

func newPlanValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [id]",
		Short: "Check referenced standards against the loaded database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			rec, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			missing, result, err := app.Plans.MissingStandards(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMissingReport(rec, missing, result))
			return nil
		},
	}
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
