package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamhogman/kubedash/dashboard/internal/export"
	"github.com/williamhogman/kubedash/dashboard/internal/view"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Production Cluster (Running)")
	assert.Contains(t, out, "Running: 8")
	assert.Contains(t, out, "web-server-1")
	assert.NotContains(t, out, "search-indexer")
	assert.Contains(t, out, "Page 1 of 2")
}

func TestList_PresetAndSort(t *testing.T) {
	out, err := run(t, "list", "--preset", "failed", "--sort", "name", "--desc")
	require.NoError(t, err)
	assert.Contains(t, out, "Name ↓")
	assert.Less(t, strings.Index(out, "search-indexer"), strings.Index(out, "logging-agent"))
	assert.NotContains(t, out, "web-server-1")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestList_SecondPage(t *testing.T) {
	out, err := run(t, "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "api-gateway")
	assert.Contains(t, out, "Page 2 of 2")
}

func TestList_BadSort(t *testing.T) {
	_, err := run(t, "list", "--sort", "colour")
	assert.True(t, errors.Is(err, view.ErrUnknownSortKey))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KUBEDASH_EXPORT_TIMESTAMP", "false")

	out, err := run(t, "export", "--format", "yaml", "--dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "kubernetes_manager_data.yaml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "workerDetails:")
}

func TestExport_BadFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "csv", "--dir", t.TempDir())
	assert.True(t, errors.Is(err, export.ErrUnsupportedFormat))
}

func TestUI_FallsBackToListWithoutTerminal(t *testing.T) {
	out, err := run(t, "ui")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 2")
}
