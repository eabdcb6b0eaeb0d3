package records

import (
	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

// WorkloadRecord is a single deployed process/container and its resource requests
type WorkloadRecord struct {
	ID      types.WorkloadID     `json:"id" yaml:"id"`
	Name    string               `json:"name" yaml:"name"`
	Cluster string               `json:"cluster" yaml:"cluster"`
	Status  types.WorkloadStatus `json:"status" yaml:"status"`
	// CPU and Memory keep the quantity exactly as reported, e.g. "250m" / "512Mi"
	CPU       string `json:"cpu" yaml:"cpu"`
	Memory    string `json:"memory" yaml:"memory"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// ServiceStatus is the availability of one service running on the server
type ServiceStatus struct {
	Name   string             `json:"name" yaml:"name"`
	Status types.ServiceState `json:"status" yaml:"status"`
}

// ServerSummary describes the cluster the workloads run on
type ServerSummary struct {
	Name     string          `json:"name" yaml:"name"`
	Status   string          `json:"status" yaml:"status"`
	Uptime   string          `json:"uptime" yaml:"uptime"`
	Version  string          `json:"version" yaml:"version"`
	Nodes    int             `json:"nodes" yaml:"nodes"`
	Services []ServiceStatus `json:"services" yaml:"services"`
}

// clone returns a copy that shares no slices with s
func (s ServerSummary) clone() ServerSummary {
	out := s
	out.Services = append([]ServiceStatus(nil), s.Services...)
	return out
}
