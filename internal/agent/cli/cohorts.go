package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// NewCohortsCmd создаёт группу CLI-команд для работы с когортами.
//
// Подкоманды:
//   - list: вывести все когорты;
//   - get: вывести когорту по id;
//   - create: создать когорту (флаги --slug и --name обязательны);
//   - update: частично обновить когорту (меняются только переданные флаги);
//   - delete: удалить когорту по id.
//
// Результаты выводятся в JSON с отступами.
func NewCohortsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cohorts",
		Short: "Работа с когортами",
	}

	cmd.AddCommand(newCohortsListCmd(app))
	cmd.AddCommand(newCohortsGetCmd(app))
	cmd.AddCommand(newCohortsCreateCmd(app))
	cmd.AddCommand(newCohortsUpdateCmd(app))
	cmd.AddCommand(newCohortsDeleteCmd(app))

	return cmd
}

// printJSON выводит значение в stdout как JSON с отступами.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCohortsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Вывести все когорты",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			cohorts, err := c.ListCohorts()
			if err != nil {
				return err
			}
			return printJSON(cmd, cohorts)
		},
	}
}

func newCohortsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <cohort-id>",
		Short: "Вывести когорту по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			cohort, err := c.GetCohort(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, cohort)
		},
	}
}

func newCohortsCreateCmd(app *App) *cobra.Command {
	var req shmodels.CreateCohortRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать когорту",
		Long: `Создать когорту.

Пример:
  cohort-tools cohorts create --slug ft-wd-paris-2026 --name "FT Web Dev Paris 2026" --program "Web Dev"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			cohort, err := c.CreateCohort(req)
			if err != nil {
				return err
			}
			return printJSON(cmd, cohort)
		},
	}

	cmd.Flags().StringVar(&req.CohortSlug, "slug", "", "unique cohort slug")
	cmd.Flags().StringVar(&req.CohortName, "name", "", "cohort display name")
	cmd.Flags().StringVar(&req.Program, "program", "", "program name")
	cmd.Flags().StringVar(&req.Format, "format", "", "format (Full Time / Part Time)")
	cmd.Flags().StringVar(&req.Campus, "campus", "", "campus city")
	cmd.Flags().StringVar(&req.StartDate, "start-date", "", "start date")
	cmd.Flags().StringVar(&req.EndDate, "end-date", "", "end date")
	cmd.Flags().BoolVar(&req.InProgress, "in-progress", false, "cohort is in progress")
	cmd.Flags().StringVar(&req.ProgramManager, "program-manager", "", "program manager")
	cmd.Flags().StringVar(&req.LeadTeacher, "lead-teacher", "", "lead teacher")
	cmd.Flags().IntVar(&req.TotalHours, "total-hours", 0, "total hours")
	cmd.MarkFlagRequired("slug")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newCohortsUpdateCmd(app *App) *cobra.Command {
	var slug, name, program, format, campus string
	var startDate, endDate, manager, teacher string
	var inProgress bool
	var totalHours int

	cmd := &cobra.Command{
		Use:   "update <cohort-id>",
		Short: "Частично обновить когорту",
		Long: `Частично обновить когорту: меняются только переданные флаги.

Пример:
  cohort-tools cohorts update <id> --campus Madrid --in-progress=false
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req shmodels.UpdateCohortRequest
			// в запрос попадают только явно переданные флаги
			if cmd.Flags().Changed("slug") {
				req.CohortSlug = &slug
			}
			if cmd.Flags().Changed("name") {
				req.CohortName = &name
			}
			if cmd.Flags().Changed("program") {
				req.Program = &program
			}
			if cmd.Flags().Changed("format") {
				req.Format = &format
			}
			if cmd.Flags().Changed("campus") {
				req.Campus = &campus
			}
			if cmd.Flags().Changed("start-date") {
				req.StartDate = &startDate
			}
			if cmd.Flags().Changed("end-date") {
				req.EndDate = &endDate
			}
			if cmd.Flags().Changed("in-progress") {
				req.InProgress = &inProgress
			}
			if cmd.Flags().Changed("program-manager") {
				req.ProgramManager = &manager
			}
			if cmd.Flags().Changed("lead-teacher") {
				req.LeadTeacher = &teacher
			}
			if cmd.Flags().Changed("total-hours") {
				req.TotalHours = &totalHours
			}

			c := NewAPIClient(app.ServerURL)
			cohort, err := c.UpdateCohort(args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, cohort)
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "unique cohort slug")
	cmd.Flags().StringVar(&name, "name", "", "cohort display name")
	cmd.Flags().StringVar(&program, "program", "", "program name")
	cmd.Flags().StringVar(&format, "format", "", "format (Full Time / Part Time)")
	cmd.Flags().StringVar(&campus, "campus", "", "campus city")
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end date")
	cmd.Flags().BoolVar(&inProgress, "in-progress", false, "cohort is in progress")
	cmd.Flags().StringVar(&manager, "program-manager", "", "program manager")
	cmd.Flags().StringVar(&teacher, "lead-teacher", "", "lead teacher")
	cmd.Flags().IntVar(&totalHours, "total-hours", 0, "total hours")

	return cmd
}

func newCohortsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cohort-id>",
		Short: "Удалить когорту",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteCohort(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cohort deleted")
			return nil
		},
	}
}
