package records

import (
	"github.com/williamhogman/kubedash/dashboard/internal/types"
)

// SampleServer returns the static server summary shown by the dashboard
func SampleServer() ServerSummary {
	return ServerSummary{
		Name:    "Production Cluster",
		Status:  "Running",
		Uptime:  "15d 7h 23m",
		Version: "v1.22.3",
		Nodes:   5,
		Services: []ServiceStatus{
			{Name: "Database", Status: types.ServiceUp},
			{Name: "Authorization", Status: types.ServiceUp},
			{Name: "Caching", Status: types.ServiceDown},
			{Name: "Monitoring", Status: types.ServiceUp},
			{Name: "Storage", Status: types.ServiceUp},
		},
	}
}

// SampleWorkloads returns the static workload list in canonical order
func SampleWorkloads() []WorkloadRecord {
	return []WorkloadRecord{
		{ID: 1, Name: "web-server-1", Cluster: "prod-east", Status: types.StatusRunning, CPU: "250m", Memory: "512Mi", CreatedAt: "2023-06-01"},
		{ID: 2, Name: "database-1", Cluster: "prod-west", Status: types.StatusRunning, CPU: "500m", Memory: "1Gi", CreatedAt: "2023-05-28"},
		{ID: 3, Name: "cache-server", Cluster: "prod-east", Status: types.StatusDisconnected, CPU: "100m", Memory: "256Mi", CreatedAt: "2023-06-02"},
		{ID: 4, Name: "auth-service", Cluster: "prod-central", Status: types.StatusRunning, CPU: "200m", Memory: "512Mi", CreatedAt: "2023-05-30"},
		{ID: 5, Name: "logging-agent", Cluster: "prod-west", Status: types.StatusFailed, CPU: "50m", Memory: "128Mi", CreatedAt: "2023-06-03"},
		{ID: 6, Name: "monitoring-service", Cluster: "prod-east", Status: types.StatusRunning, CPU: "150m", Memory: "384Mi", CreatedAt: "2023-06-04"},
		{ID: 7, Name: "backup-service", Cluster: "prod-central", Status: types.StatusRunning, CPU: "100m", Memory: "256Mi", CreatedAt: "2023-06-05"},
		{ID: 8, Name: "load-balancer", Cluster: "prod-west", Status: types.StatusRunning, CPU: "200m", Memory: "512Mi", CreatedAt: "2023-06-06"},
		{ID: 9, Name: "message-queue", Cluster: "prod-east", Status: types.StatusDisconnected, CPU: "300m", Memory: "768Mi", CreatedAt: "2023-06-07"},
		{ID: 10, Name: "data-processor", Cluster: "prod-central", Status: types.StatusRunning, CPU: "400m", Memory: "1Gi", CreatedAt: "2023-06-08"},
		{ID: 11, Name: "api-gateway", Cluster: "prod-west", Status: types.StatusRunning, CPU: "250m", Memory: "512Mi", CreatedAt: "2023-06-09"},
		{ID: 12, Name: "search-indexer", Cluster: "prod-east", Status: types.StatusFailed, CPU: "350m", Memory: "896Mi", CreatedAt: "2023-06-10"},
	}
}
