package cli

import (
	"github.com/spf13/cobra"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/logging"
	"github.com/williamhogman/kubedash/dashboard/internal/tui"
)

func newUICmd(a *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive terminal dashboard",
		Long:  "Launch the interactive terminal dashboard. When stdout is not a terminal the first page of the table is printed instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.isTTY() {
				return a.runList(listOptions{})
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := logging.ProvideTerminalLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			svc, _, err := loadDashboard(logger)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), svc, logger)
		},
	}
}
