package cli

import (
	"github.com/spf13/cobra"

	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/auth"
	"github.com/Jamolkhon5/projassist/internal/config"
	"github.com/Jamolkhon5/projassist/internal/metrics"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

// App holds what the commands need. It is built once in main.
type App struct {
	Config    *config.Config
	Auth      *auth.Config
	Assistant *service.ProjectAssistant
	Dialogue  *service.Dialogue
	Sessions  *repository.Repository
	Metrics   *metrics.Metrics

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level command and registers all subcommands.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "projassist",
		Short:        "Arabic assistant for project management and graduation projects",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newBotCmd(app),
		newAskCmd(app),
		newGuidedCmd(app),
	)
	return root
}
