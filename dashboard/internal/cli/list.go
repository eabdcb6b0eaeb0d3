package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/williamhogman/kubedash/dashboard/internal/tui"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

type listOptions struct {
	filter string
	preset string
	sort   string
	desc   bool
	page   int
}

func newListCmd(a *cliApp) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the workload table",
		Example: `  kubedash list --preset failed
  kubedash list --filter prod-east --sort cpu --desc
  kubedash list --page 2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runList(opts)
		},
	}
	cmd.Flags().StringVar(&opts.filter, "filter", "", "search text matched against name, cluster and status")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "preset filter: All, Database, Running or Failed")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort key: id, name, cluster, status, cpu, memory or createdAt")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	return cmd
}

func (a *cliApp) runList(opts listOptions) error {
	svc, _, err := loadDashboard(zap.NewNop())
	if err != nil {
		return err
	}

	state, err := svc.Controller().FromQuery(view.Query{
		Filter:     opts.filter,
		Preset:     opts.preset,
		Sort:       opts.sort,
		Descending: opts.desc,
		Page:       opts.page,
	})
	if err != nil {
		return err
	}
	page := svc.Derive(state)

	summary := svc.Summary()
	fmt.Fprintf(a.stdout, "%s (%s)  ", summary.Server.Name, summary.Server.Status)
	for _, t := range svc.Tiles() {
		fmt.Fprintf(a.stdout, "%s: %d  ", t.Status, t.Count)
	}
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, tui.WorkloadTable(page, state, -1))
	fmt.Fprintln(a.stdout, tui.Pager(page))
	return nil
}
