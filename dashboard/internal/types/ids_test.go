package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkloadID(t *testing.T) {
	id, err := ParseWorkloadID("workload-12")
	require.NoError(t, err)
	assert.Equal(t, WorkloadID(12), id)
	assert.Equal(t, "workload-12", id.WithPrefix())

	id, err = ParseWorkloadID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, WorkloadID(7), id)

	_, err = ParseWorkloadID("workload-")
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = ParseWorkloadID("abc")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = ParseWorkloadID("-3")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestWorkloadIDZapField(t *testing.T) {
	assert.Equal(t, "workloadID", WorkloadID(3).ZapField().Key)
	assert.Equal(t, "", WorkloadID(0).WithPrefix())
}

func TestWorkloadStatus(t *testing.T) {
	assert.Equal(t, "Running", StatusRunning.String())
	assert.Equal(t, "Failed", StatusFailed.String())
	assert.True(t, StatusDisconnected.IsKnown())
	assert.False(t, WorkloadStatus("Pending").IsKnown())
	assert.True(t, ServiceUp.IsUp())
	assert.False(t, ServiceDown.IsUp())
}
