package models

import "time"

// MetricsSnapshot summarises process counters for the /metrics/summary endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64            `json:"requests_total"`
	AverageRequestDurationMs float64           `json:"average_request_duration_ms"`
	OperationsTotal          uint64            `json:"operations_total"`
	RejectionsTotal          uint64            `json:"rejections_total"`
	RejectionsByReason       map[string]uint64 `json:"rejections_by_reason"`
	ActiveSessions           int               `json:"active_sessions"`
	Goroutines               int               `json:"goroutines"`
	GeneratedAt              time.Time         `json:"generated_at"`
}
