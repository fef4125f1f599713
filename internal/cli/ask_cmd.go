package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
)

func newAskCmd(app *App) *cobra.Command {
	var projectType string
	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a single direct question",
		Long:  "Ask a free-form question. Without --type the question is classified as pm or gp.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := args[0]
			if err := validator.ValidateQuestion(question); err != nil {
				return err
			}

			pt, err := resolveProjectType(projectType, func() models.ProjectType {
				return app.Assistant.Classify(question)
			})
			if err != nil {
				return err
			}

			reply := app.Assistant.AskDirect(context.Background(), question, pt, nil)
			fmt.Fprintln(cmd.OutOrStdout(), renderBox(pt.Label(), reply))
			return nil
		},
	}
	cmd.Flags().StringVar(&projectType, "type", "", "project type: pm or gp")
	return cmd
}

// resolveProjectType parses flag, falling back to fallback when it is empty.
func resolveProjectType(flag string, fallback func() models.ProjectType) (models.ProjectType, error) {
	if flag == "" {
		return fallback(), nil
	}
	return models.ParseProjectType(flag)
}
