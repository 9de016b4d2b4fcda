package alerts

import "context"

// AlertLevel indicates the severity of a scrape alert.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"  // Parse failures degraded part of the batch
	AlertCritical AlertLevel = "critical" // Live sources failed, serving the bundled sample
)

// Alert represents a scrape health notification.
type Alert struct {
	Level        AlertLevel `json:"level"`
	Source       string     `json:"source"`
	Date         string     `json:"date"`
	RecordCount  int        `json:"record_count"`
	FailureCount int        `json:"failure_count"`
	Message      string     `json:"message"`
}

// Notifier sends alerts to external systems.
type Notifier interface {
	// Name returns the notifier identifier.
	Name() string

	// Send delivers an alert. Implementations must be safe for concurrent use.
	Send(ctx context.Context, alert Alert) error
}
