package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
)

func newGuidedCmd(app *App) *cobra.Command {
	var projectType string
	cmd := &cobra.Command{
		Use:   "guided",
		Short: "Answer the guided questionnaire in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("guided needs an interactive terminal; use the HTTP API or the bot instead")
			}

			s := service.NewSession(uuid.NewString(), app.Assistant.Store())
			q := s.Questionnaire
			if err := q.Start(); err != nil {
				return err
			}

			pt, err := resolveProjectType(projectType, func() models.ProjectType { return "" })
			if err != nil {
				return err
			}
			if !pt.Valid() {
				if pt, err = selectProjectType(); err != nil {
					return err
				}
			}
			if err := q.ChooseProjectType(pt); err != nil {
				return err
			}
			s.ProjectType = pt

			fields := q.Fields()
			values := make([]string, len(fields))
			if err := questionnaireForm(fields, values).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
				return err
			}
			for _, v := range values {
				if err := q.Submit(v); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderBox(prompts.SummaryHeader, renderSummary(q.Summary())))

			generate := true
			confirm := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(prompts.GenerateLabel).
					Value(&generate),
			)).WithTheme(assistantHuhTheme()).WithShowHelp(false)
			if err := confirm.Run(); err != nil || !generate {
				return nil
			}

			fmt.Fprintln(out, styleLabel.Render(prompts.GeneratingText))
			resp := app.Dialogue.Generate(context.Background(), s)
			fmt.Fprintln(out, renderBox(pt.Label(), resp.Message))
			return nil
		},
	}
	cmd.Flags().StringVar(&projectType, "type", "", "project type: pm or gp")
	return cmd
}

func selectProjectType() (models.ProjectType, error) {
	var code string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(prompts.ChooseProjectTypeText).
			Options(
				huh.NewOption(models.ProjectManagement.Label(), string(models.ProjectManagement)),
				huh.NewOption(models.GraduationProject.Label(), string(models.GraduationProject)),
			).
			Value(&code),
	)).WithTheme(assistantHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return models.ParseProjectType(code)
}

// questionnaireForm builds one form group per field. values[i] receives the
// answer to fields[i] and starts at the field's default.
func questionnaireForm(fields []models.QuestionnaireField, values []string) *huh.Form {
	groups := make([]*huh.Group, 0, len(fields))
	for i, field := range fields {
		values[i] = field.Default
		validate := func(s string) error {
			_, err := validator.ValidateAnswer(field, s)
			return err
		}
		title := fmt.Sprintf("(%d/%d) %s", i+1, len(fields), field.Prompt)

		var input huh.Field
		switch field.Kind {
		case models.SingleChoice:
			if values[i] == "" && len(field.Choices) > 0 {
				values[i] = field.Choices[0]
			}
			input = huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(field.Choices...)...).
				Value(&values[i])
		case models.NumericRange:
			input = huh.NewInput().
				Title(title).
				Description(fmt.Sprintf("%d - %d", field.Min, field.Max)).
				Placeholder(strconv.Itoa(field.Min)).
				Value(&values[i]).
				Validate(validate)
		default:
			input = huh.NewText().
				Title(title).
				CharLimit(validator.MaxAnswerLength).
				Value(&values[i]).
				Validate(validate)
		}
		groups = append(groups, huh.NewGroup(input))
	}
	return huh.NewForm(groups...).WithTheme(assistantHuhTheme()).WithShowHelp(false)
}
