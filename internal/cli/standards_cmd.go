package cli

import (
	"fmt"

	"github.com/ainara-edu/teksplan/internal/cli/formatter"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/spf13/cobra"
)

func newStandardsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standards",
		Short: "Load and query standards databases",
	}

	cmd.AddCommand(
		newStandardsLoadCmd(app),
		newStandardsLookupCmd(app),
	)

	return cmd
}

func newStandardsLoadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "load <subject>",
		Short: "Resolve a subject and load its standards database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := args[0]
			result := app.Session.Load(subject)

			fmt.Printf("Subject %q resolves to source stem %q\n",
				subject, standards.SourceForSubject(subject))
			fmt.Println(formatter.FormatLoadResult(result))
			return nil
		},
	}
}

func newStandardsLookupCmd(app *App) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "lookup <id>",
		Short: "Look up a standard ID in the loaded database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			result := app.Session.Load(subject)

			def, found := result.DB.Lookup(id)
			fmt.Println(formatter.FormatLookup(id, def, found))
			if !found && result.Empty {
				fmt.Println(formatter.Dim("No standards source was found; every lookup reports missing."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", standards.GenericStem,
		"Subject whose standards database to search")
	return cmd
}
