package types

import (
	corev1 "k8s.io/api/core/v1"
)

// WorkloadStatus is the reported state of a workload. Values outside the
// known constants are allowed and are carried through untouched.
type WorkloadStatus string

const (
	// StatusRunning matches the Kubernetes pod phase of the same name
	StatusRunning WorkloadStatus = WorkloadStatus(corev1.PodRunning)
	// StatusFailed matches the Kubernetes pod phase of the same name
	StatusFailed WorkloadStatus = WorkloadStatus(corev1.PodFailed)
	// StatusDisconnected indicates the workload's node stopped reporting
	StatusDisconnected WorkloadStatus = "Disconnected"
)

func (s WorkloadStatus) String() string {
	return string(s)
}

// IsKnown reports whether the status is one of the named constants
func (s WorkloadStatus) IsKnown() bool {
	switch s {
	case StatusRunning, StatusFailed, StatusDisconnected:
		return true
	}
	return false
}

// ServiceState is the availability of a cluster-level service
type ServiceState string

const (
	ServiceUp   ServiceState = "Up"
	ServiceDown ServiceState = "Down"
)

func (s ServiceState) String() string {
	return string(s)
}

// IsUp returns true when the service is available
func (s ServiceState) IsUp() bool {
	return s == ServiceUp
}
