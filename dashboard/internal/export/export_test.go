package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"
	"gopkg.in/yaml.v3"

	"github.com/williamhogman/kubedash/dashboard/internal/aggregate"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

var generatedAt = time.Date(2023, 6, 10, 14, 25, 0, 0, time.UTC)

func sampleSnapshot() Snapshot {
	workloads := records.SampleWorkloads()
	return NewSnapshot(records.SampleServer(), aggregate.StatusCounts(workloads), workloads, generatedAt)
}

func TestJoinServices(t *testing.T) {
	got := JoinServices(records.SampleServer().Services)
	assert.Equal(t, "Database: Up, Authorization: Up, Caching: Down, Monitoring: Up, Storage: Up", got)
	assert.Equal(t, "", JoinServices(nil))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "kubernetes_manager_data.xlsx", FileName(DefaultBaseName, FormatXLSX, generatedAt, false))
	assert.Equal(t, "kubernetes_manager_data-20230610-142500.yaml", FileName("", FormatYAML, generatedAt, true))
	assert.Equal(t, "nightly.xlsx", FileName("nightly", FormatXLSX, generatedAt, false))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = EncoderFor(Format("pdf"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestNewSnapshot_CopiesWorkloads(t *testing.T) {
	workloads := records.SampleWorkloads()
	snap := NewSnapshot(records.SampleServer(), aggregate.StatusCounts(workloads), workloads, generatedAt)
	workloads[0].Name = "changed"

	assert.Equal(t, "web-server-1", snap.Workloads[0].Name)
	assert.Equal(t, 12, snap.Len())
	assert.NotEqual(t, snap.ID, sampleSnapshot().ID)
}

func TestXLSXEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxEncoder{}.Encode(&buf, sampleSnapshot()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetServerDetails, SheetWorkerNumbers, SheetWorkerDetails}, f.GetSheetList())

	server, err := f.GetRows(SheetServerDetails)
	require.NoError(t, err)
	require.Len(t, server, 2)
	assert.Equal(t, []string{"name", "status", "uptime", "version", "nodes", "services"}, server[0])
	assert.Equal(t, []string{
		"Production Cluster", "Running", "15d 7h 23m", "v1.22.3", "5",
		"Database: Up, Authorization: Up, Caching: Down, Monitoring: Up, Storage: Up",
	}, server[1])

	numbers, err := f.GetRows(SheetWorkerNumbers)
	require.NoError(t, err)
	require.Len(t, numbers, 2)
	assert.Equal(t, []string{"Running", "Disconnected", "Failed"}, numbers[0])
	assert.Equal(t, []string{"8", "2", "2"}, numbers[1])

	details, err := f.GetRows(SheetWorkerDetails)
	require.NoError(t, err)
	require.Len(t, details, 13)
	assert.Equal(t, []string{"id", "name", "cluster", "status", "cpu", "memory", "createdAt"}, details[0])
	assert.Equal(t, []string{"1", "web-server-1", "prod-east", "Running", "250m", "512Mi", "2023-06-01"}, details[1])
	assert.Equal(t, []string{"12", "search-indexer", "prod-east", "Failed", "350m", "896Mi", "2023-06-10"}, details[12])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "kubedash", props.Creator)
}

func TestXLSXEncoder_EmptyStore(t *testing.T) {
	snap := NewSnapshot(records.ServerSummary{Name: "empty"}, aggregate.StatusCounts(nil), nil, generatedAt)

	var buf bytes.Buffer
	require.NoError(t, xlsxEncoder{}.Encode(&buf, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	details, err := f.GetRows(SheetWorkerDetails)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestYAMLEncoder(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, yamlEncoder{}.Encode(&buf, snap))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, snap.ID.String(), doc.SnapshotID)
	assert.True(t, generatedAt.Equal(doc.GeneratedAt))
	assert.Equal(t, "Production Cluster", doc.ServerDetails.Name)
	assert.Equal(t, 5, doc.ServerDetails.Nodes)
	assert.Equal(t, JoinServices(snap.Server.Services), doc.ServerDetails.Services)
	assert.Equal(t, []aggregate.StatusCount{
		{Status: "Running", Count: 8},
		{Status: "Disconnected", Count: 2},
		{Status: "Failed", Count: 2},
	}, doc.WorkerNumbers)
	assert.Equal(t, records.SampleWorkloads(), doc.WorkerDetails)
}

func TestWriter_Render(t *testing.T) {
	w := NewWriter(t.TempDir(), "", FormatYAML, false, zaptest.NewLogger(t))

	file, err := w.Render(sampleSnapshot(), "")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, file.Format)
	assert.Equal(t, "kubernetes_manager_data.yaml", file.Name)
	assert.Equal(t, "application/yaml", file.ContentType)
	assert.Equal(t, 12, file.Records)
	assert.NotEmpty(t, file.Data)

	file, err = w.Render(sampleSnapshot(), FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, xlsxContentType, file.ContentType)

	_, err = w.Render(sampleSnapshot(), Format("csv"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestWriter_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	w := NewWriter(dir, DefaultBaseName, FormatXLSX, true, zaptest.NewLogger(t))

	path, err := w.Save(context.Background(), sampleSnapshot(), "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "kubernetes_manager_data-20230610-142500.xlsx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	details, err := f.GetRows(SheetWorkerDetails)
	require.NoError(t, err)
	assert.Len(t, details, 13)
}

func TestWriter_SaveCancelled(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, "", FormatYAML, false, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Save(ctx, sampleSnapshot(), "")
	assert.True(t, errors.Is(err, context.Canceled))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriter_SaveUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	w := NewWriter(file, "", FormatYAML, false, zaptest.NewLogger(t))
	_, err := w.Save(context.Background(), sampleSnapshot(), "")
	assert.Error(t, err)
}
