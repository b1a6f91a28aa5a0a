// Package health reports process liveness. The snapshot is static apart from
// uptime and timestamp: dependencies are never probed here.
package health

import (
	"time"

	"chapel/internal/platform/config"
)

// StatusHealthy is the only status the reporter emits.
const StatusHealthy = "healthy"

// ServiceOperational is reported for every listed service.
const ServiceOperational = "operational"

// Snapshot is the body of GET /api/health.
type Snapshot struct {
	Status        string            `json:"status"`
	Timestamp     string            `json:"timestamp"`
	UptimeSeconds float64           `json:"uptimeSeconds"`
	Version       string            `json:"version"`
	Environment   string            `json:"environment"`
	Services      map[string]string `json:"services"`
}

// Reporter builds liveness snapshots.
type Reporter struct {
	startedAt time.Time
	version   string
	env       config.Environment
	clock     func() time.Time
}

// NewReporter captures process start time and build metadata. An empty version
// falls back to config.DefaultVersion; a nil clock uses time.Now.
func NewReporter(startedAt time.Time, version string, env config.Environment, clock func() time.Time) *Reporter {
	if version == "" {
		version = config.DefaultVersion
	}
	if clock == nil {
		clock = time.Now
	}
	return &Reporter{startedAt: startedAt, version: version, env: env, clock: clock}
}

// Snapshot never fails.
func (r *Reporter) Snapshot() Snapshot {
	return r.SnapshotAt(r.clock())
}

// SnapshotAt reports as of now, typically the request start time.
func (r *Reporter) SnapshotAt(now time.Time) Snapshot {
	uptime := now.Sub(r.startedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}
	return Snapshot{
		Status:        StatusHealthy,
		Timestamp:     now.UTC().Format(time.RFC3339Nano),
		UptimeSeconds: uptime,
		Version:       r.version,
		Environment:   string(r.env),
		Services: map[string]string{
			"api":      ServiceOperational,
			"database": ServiceOperational,
			"cache":    ServiceOperational,
		},
	}
}
