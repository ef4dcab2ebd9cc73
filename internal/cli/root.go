package cli

import (
	"strings"

	"github.com/ainara-edu/teksplan/internal/generation"
	"github.com/ainara-edu/teksplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all services used by CLI commands. Drafts is nil
// when the generation service is disabled.
type App struct {
	Plans    service.PlanService
	Loader   service.StandardsLoader
	Session  *service.StandardsSession
	Drafts   generation.DraftService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// surfaces (edit form, plan viewer) refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "teksplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "teksplan",
		Short: "Lesson plan editor and standards checker",
	}

	// Accept snake_case flag spellings from older scripts.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newPlanCmd(app),
		newStandardsCmd(app),
		newDraftCmd(app),
		newViewCmd(app),
	)

	return root
}
