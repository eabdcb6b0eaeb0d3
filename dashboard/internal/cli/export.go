package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/export"
)

func newExportCmd(a *cliApp) *cobra.Command {
	var (
		format string
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save a snapshot of all dashboard data to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var requested export.Format
			if format != "" {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				requested = f
			}

			svc, _, err := loadDashboard(zap.NewNop(), fx.Decorate(func(cfg *config.Config) *config.Config {
				if dir != "" {
					cfg.Export.Dir = dir
				}
				return cfg
			}))
			if err != nil {
				return err
			}

			path, err := svc.SaveExport(cmd.Context(), requested)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintln(a.stdout, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "xlsx or yaml (default from KUBEDASH_EXPORT_FORMAT)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from KUBEDASH_EXPORT_DIR)")
	return cmd
}
