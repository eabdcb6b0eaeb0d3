package export

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/williamhogman/kubedash/dashboard/internal/aggregate"
	"github.com/williamhogman/kubedash/dashboard/internal/records"
)

const yamlContentType = "application/yaml"

// Document is the yaml form of a snapshot
type Document struct {
	SnapshotID    string                   `yaml:"snapshotId"`
	GeneratedAt   time.Time                `yaml:"generatedAt"`
	ServerDetails ServerDetails            `yaml:"serverDetails"`
	WorkerNumbers []aggregate.StatusCount  `yaml:"workerNumbers"`
	WorkerDetails []records.WorkloadRecord `yaml:"workerDetails"`
}

// ServerDetails is the server summary with services flattened to one string
type ServerDetails struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Uptime   string `yaml:"uptime"`
	Version  string `yaml:"version"`
	Nodes    int    `yaml:"nodes"`
	Services string `yaml:"services"`
}

type yamlEncoder struct{}

func (yamlEncoder) Format() Format      { return FormatYAML }
func (yamlEncoder) ContentType() string { return yamlContentType }

func (yamlEncoder) Encode(w io.Writer, snap Snapshot) error {
	doc := Document{
		SnapshotID:  snap.ID.String(),
		GeneratedAt: snap.GeneratedAt,
		ServerDetails: ServerDetails{
			Name:     snap.Server.Name,
			Status:   snap.Server.Status,
			Uptime:   snap.Server.Uptime,
			Version:  snap.Server.Version,
			Nodes:    snap.Server.Nodes,
			Services: JoinServices(snap.Server.Services),
		},
		WorkerNumbers: snap.Counts.Entries(),
		WorkerDetails: snap.Workloads,
	}
	if doc.WorkerNumbers == nil {
		doc.WorkerNumbers = []aggregate.StatusCount{}
	}
	if doc.WorkerDetails == nil {
		doc.WorkerDetails = []records.WorkloadRecord{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
