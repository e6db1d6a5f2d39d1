package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	ReadPassword = func(cmd *cobra.Command) (string, error) {
		return readPassword(cmd)
	}
)
