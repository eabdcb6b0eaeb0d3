package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamhogman/kubedash/dashboard/internal/records"
	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

func TestStatusCounts_SampleDataset(t *testing.T) {
	counts := StatusCounts(records.SampleWorkloads())

	assert.Equal(t, 8, counts.Get(types.StatusRunning))
	assert.Equal(t, 2, counts.Get(types.StatusFailed))
	assert.Equal(t, 2, counts.Get(types.StatusDisconnected))
	assert.Equal(t, 0, counts.Get("Pending"))
	assert.Equal(t, 12, counts.Total())

	// first-seen order: Running (id 1), Disconnected (id 3), Failed (id 5)
	entries := counts.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, types.StatusRunning, entries[0].Status)
	assert.Equal(t, types.StatusDisconnected, entries[1].Status)
	assert.Equal(t, types.StatusFailed, entries[2].Status)
}

func TestStatusCounts_NovelStatus(t *testing.T) {
	workloads := []records.WorkloadRecord{
		{ID: 1, Status: "CrashLoopBackOff"},
		{ID: 2, Status: types.StatusRunning},
		{ID: 3, Status: "CrashLoopBackOff"},
	}
	counts := StatusCounts(workloads)
	assert.Equal(t, 2, counts.Get("CrashLoopBackOff"))
	assert.Equal(t, 1, counts.Get(types.StatusRunning))
	assert.Equal(t, 2, counts.Len())
}

func TestStatusCounts_Empty(t *testing.T) {
	counts := StatusCounts(nil)
	assert.Equal(t, 0, counts.Len())
	assert.Equal(t, 0, counts.Total())
	assert.Equal(t, 0, counts.Get(types.StatusRunning))

	data, err := json.Marshal(counts)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestStatusCounts_JSON(t *testing.T) {
	data, err := json.Marshal(StatusCounts(records.SampleWorkloads()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Running":8,"Disconnected":2,"Failed":2}`, string(data))
}

func TestResourceTotals(t *testing.T) {
	totals, err := ResourceTotals(records.SampleWorkloads())
	require.NoError(t, err)
	assert.Equal(t, int64(2850), totals.CPU.MilliValue())
	assert.Equal(t, int64(6784)*1024*1024, totals.Memory.Value())
}

func TestResourceTotals_InvalidQuantity(t *testing.T) {
	_, err := ResourceTotals([]records.WorkloadRecord{{ID: 1, CPU: "fast", Memory: "1Mi"}})
	assert.Error(t, err)
}
