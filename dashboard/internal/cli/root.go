package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/williamhogman/kubedash/dashboard/internal/app"
	"github.com/williamhogman/kubedash/dashboard/internal/config"
	"github.com/williamhogman/kubedash/dashboard/internal/service"
)

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	isTTY  func() bool
}

// NewRootCommand builds the kubedash command tree writing to the process streams
func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdout, os.Stderr)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &cliApp{
		stdout: out,
		stderr: errOut,
		isTTY: func() bool {
			return out == io.Writer(os.Stdout) && stdoutIsTTY()
		},
	}

	cmd := &cobra.Command{
		Use:           "kubedash",
		Short:         "Kubernetes cluster dashboard",
		Long:          "kubedash shows a server summary, status counts and a searchable, sortable, paginated workload table, and exports snapshots to xlsx or yaml.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.AddCommand(
		newServeCmd(a),
		newUICmd(a),
		newListCmd(a),
		newExportCmd(a),
	)
	return cmd
}

// loadDashboard builds the dashboard service without transports. Extra
// options may decorate the configuration.
func loadDashboard(logger *zap.Logger, opts ...fx.Option) (*service.DashboardService, *config.Config, error) {
	var (
		svc *service.DashboardService
		cfg *config.Config
	)
	options := []fx.Option{
		fx.NopLogger,
		config.Module,
		fx.Supply(logger),
		app.Dashboard,
		fx.Populate(&svc, &cfg),
	}
	options = append(options, opts...)

	if err := fx.New(options...).Err(); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// stdoutIsTTY returns true when os.Stdout is connected to an interactive terminal.
func stdoutIsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
