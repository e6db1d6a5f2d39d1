// Package cli реализует командный интерфейс (CLI) клиента cohort-tools.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (auth токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженные учётные данные.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера cohort-tools (например, "http://127.0.0.1:5005").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым auth токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:5005",
	}

	cmd := &cobra.Command{
		Use:   "cohort-tools",
		Short: "Cohort Tools CLI — клиент API когорт и студентов",
		Long: `Cohort Tools CLI.

Команды:
  signup    Регистрация нового пользователя
  login     Логин (получить auth токен)
  verify    Проверить сохранённый auth токен
  cohorts   Работа с когортами (list/get/create/update/delete)
  students  Работа со студентами (list/get/create/update/delete)
  version   Версия и дата сборки

Примеры:

Регистрация:
  cohort-tools signup --email test@example.com --name "Test User"
  (пароль запрашивается интерактивно, если не передан флагом)

Логин:
  cohort-tools login --email test@example.com
  (сохраняет auth токен в локальном конфиге)

Проверка токена:
  cohort-tools verify

Когорты и студенты:
  cohort-tools cohorts list
  cohort-tools students list --cohort <uuid>
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:5005", "server base URL")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewVerifyCmd(app))
	cmd.AddCommand(NewCohortsCmd(app))
	cmd.AddCommand(NewStudentsCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
