package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// NewStudentsCmd создаёт группу CLI-команд для работы со студентами.
//
// Подкоманды:
//   - list: вывести всех студентов (или студентов одной когорты с --cohort);
//   - get: вывести студента по id;
//   - create: создать студента (--first-name, --last-name, --email обязательны);
//   - update: частично обновить студента (меняются только переданные флаги);
//   - delete: удалить студента по id.
//
// Результаты выводятся в JSON с отступами, когорта приходит populated.
func NewStudentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Работа со студентами",
	}

	cmd.AddCommand(newStudentsListCmd(app))
	cmd.AddCommand(newStudentsGetCmd(app))
	cmd.AddCommand(newStudentsCreateCmd(app))
	cmd.AddCommand(newStudentsUpdateCmd(app))
	cmd.AddCommand(newStudentsDeleteCmd(app))

	return cmd
}

func newStudentsListCmd(app *App) *cobra.Command {
	var cohortID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Вывести студентов (всех или одной когорты)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			var (
				students []shmodels.Student
				err      error
			)
			if cohortID != "" {
				students, err = c.ListStudentsByCohort(cohortID)
			} else {
				students, err = c.ListStudents()
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, students)
		},
	}

	cmd.Flags().StringVar(&cohortID, "cohort", "", "filter by cohort id")

	return cmd
}

func newStudentsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <student-id>",
		Short: "Вывести студента по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			st, err := c.GetStudent(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, st)
		},
	}
}

func newStudentsCreateCmd(app *App) *cobra.Command {
	var req shmodels.CreateStudentRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать студента",
		Long: `Создать студента.

Пример:
  cohort-tools students create --first-name Ada --last-name Lovelace --email ada@example.com --cohort <uuid>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			st, err := c.CreateStudent(req)
			if err != nil {
				return err
			}
			return printJSON(cmd, st)
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.LinkedinURL, "linkedin", "", "linkedin profile URL")
	cmd.Flags().StringSliceVar(&req.Languages, "languages", nil, "spoken languages")
	cmd.Flags().StringVar(&req.Program, "program", "", "program name")
	cmd.Flags().StringVar(&req.Background, "background", "", "professional background")
	cmd.Flags().StringVar(&req.Image, "image", "", "avatar image URL")
	cmd.Flags().StringSliceVar(&req.Projects, "projects", nil, "project names")
	cmd.Flags().StringVar(&req.Cohort, "cohort", "", "cohort id (UUID)")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func newStudentsUpdateCmd(app *App) *cobra.Command {
	var firstName, lastName, email, phone, linkedin string
	var program, background, image, cohort string
	var languages, projects []string

	cmd := &cobra.Command{
		Use:   "update <student-id>",
		Short: "Частично обновить студента",
		Long: `Частично обновить студента: меняются только переданные флаги.
Пустое значение --cohort="" отвязывает студента от когорты.

Пример:
  cohort-tools students update <id> --phone "+34 123 456 789"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req shmodels.UpdateStudentRequest
			// в запрос попадают только явно переданные флаги
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("linkedin") {
				req.LinkedinURL = &linkedin
			}
			if cmd.Flags().Changed("languages") {
				req.Languages = &languages
			}
			if cmd.Flags().Changed("program") {
				req.Program = &program
			}
			if cmd.Flags().Changed("background") {
				req.Background = &background
			}
			if cmd.Flags().Changed("image") {
				req.Image = &image
			}
			if cmd.Flags().Changed("projects") {
				req.Projects = &projects
			}
			if cmd.Flags().Changed("cohort") {
				req.Cohort = &cohort
			}

			c := NewAPIClient(app.ServerURL)
			st, err := c.UpdateStudent(args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, st)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&linkedin, "linkedin", "", "linkedin profile URL")
	cmd.Flags().StringSliceVar(&languages, "languages", nil, "spoken languages")
	cmd.Flags().StringVar(&program, "program", "", "program name")
	cmd.Flags().StringVar(&background, "background", "", "professional background")
	cmd.Flags().StringVar(&image, "image", "", "avatar image URL")
	cmd.Flags().StringSliceVar(&projects, "projects", nil, "project names")
	cmd.Flags().StringVar(&cohort, "cohort", "", "cohort id (empty string detaches)")

	return cmd
}

func newStudentsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <student-id>",
		Short: "Удалить студента",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteStudent(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "student deleted")
			return nil
		},
	}
}
