package aggregate

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

// Totals holds the summed resource requests of a set of workloads
type Totals struct {
	CPU    resource.Quantity `json:"cpu"`
	Memory resource.Quantity `json:"memory"`
}

// ResourceTotals sums cpu and memory across all workloads
func ResourceTotals(workloads []records.WorkloadRecord) (Totals, error) {
	totals := Totals{
		CPU:    *resource.NewMilliQuantity(0, resource.DecimalSI),
		Memory: *resource.NewQuantity(0, resource.BinarySI),
	}

	for _, w := range workloads {
		cpu, err := resource.ParseQuantity(w.CPU)
		if err != nil {
			return Totals{}, fmt.Errorf("workload %s cpu %q: %w", w.ID, w.CPU, err)
		}
		mem, err := resource.ParseQuantity(w.Memory)
		if err != nil {
			return Totals{}, fmt.Errorf("workload %s memory %q: %w", w.ID, w.Memory, err)
		}
		totals.CPU.Add(cpu)
		totals.Memory.Add(mem)
	}

	return totals, nil
}
