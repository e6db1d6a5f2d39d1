package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewVerifyCmd создаёт CLI-команду проверки сохранённого auth токена.
//
// Команда отправляет токен из локального конфига на /auth/verify
// и выводит claims: идентификатор, email и имя пользователя.
//
// Пример использования:
//
//	cohort-tools verify
func NewVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Проверить сохранённый auth токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AuthToken == "" {
				return errors.New("no saved token, run `cohort-tools login` first")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Verify(app.Creds.AuthToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"token ok\nuser_id=%s\nemail=%s\nname=%s\n",
				resp.UserID,
				resp.Email,
				resp.Name,
			)
			return nil
		},
	}
}
