package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/williamhogman/kubedash/dashboard/internal/types"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

type column struct {
	title string
	key   view.SortKey
}

var columns = []column{
	{"ID", view.SortByID},
	{"Name", view.SortByName},
	{"Cluster", view.SortByCluster},
	{"Status", view.SortByStatus},
	{"CPU", view.SortByCPU},
	{"Memory", view.SortByMemory},
	{"Created", view.SortByCreated},
}

const statusColumn = 3

// WorkloadTable renders one page of workloads. The active sort column carries
// a direction arrow; selected is the highlighted row, or -1 for none.
func WorkloadTable(page view.Page, state view.State, selected int) string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.title
		if state.SortKey != view.SortNone && col.key == state.SortKey {
			headers[i] += " " + state.Direction.Arrow()
		}
	}

	rows := make([][]string, len(page.Rows))
	statuses := make([]types.WorkloadStatus, len(page.Rows))
	for i, w := range page.Rows {
		rows[i] = []string{w.ID.String(), w.Name, w.Cluster, w.Status.String(), w.CPU, w.Memory, w.CreatedAt}
		statuses[i] = w.Status
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle
			case col == statusColumn && row >= 0 && row < len(statuses):
				return statusStyle(statuses[row]).Padding(0, 1)
			}
			return cellStyle
		})

	out := t.String()
	if len(page.Rows) == 0 {
		out += "\n" + disabledStyle.Render("  no workloads match")
	}
	return out
}

// Pager renders the page position with previous/next markers that dim at
// the boundaries.
func Pager(page view.Page) string {
	prev, next := "← prev", "next →"
	if page.HasPrev {
		prev = valueStyle.Render(prev)
	} else {
		prev = disabledStyle.Render(prev)
	}
	if page.HasNext {
		next = valueStyle.Render(next)
	} else {
		next = disabledStyle.Render(next)
	}

	return fmt.Sprintf("%s  Page %d of %d  %s%s",
		prev, page.Page, page.PageCount, next,
		labelStyle.Render(fmt.Sprintf("  (%d workloads)", page.Total)))
}
