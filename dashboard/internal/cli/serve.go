package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/williamhogman/kubedash/dashboard/internal/app"
	"github.com/williamhogman/kubedash/dashboard/internal/config"
)

func newServeCmd(_ *cliApp) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and Connect API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := []fx.Option{app.Everything}
			if cmd.Flags().Changed("port") {
				options = append(options, fx.Decorate(func(cfg *config.Config) *config.Config {
					cfg.Server.Port = port
					return cfg
				}))
			}
			fx.New(options...).Run()
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "listen port (overrides KUBEDASH_SERVER_PORT)")
	return cmd
}
