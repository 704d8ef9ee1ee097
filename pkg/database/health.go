package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database reachability and connection pool statistics.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots pool statistics. A reachable but
// saturated pool reports "degraded": event-batch bursts from a large fleet
// queue on the pool before they fail, and the dashboard should see that
// pressure before requests start timing out.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()

	return &HealthStatus{
		Status:          classifyPool(stats),
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}

// classifyPool maps pool statistics onto a health status: "degraded" when
// every connection is in use and requests have had to wait, "healthy"
// otherwise. MaxOpenConnections of zero means an unbounded pool, which never
// saturates.
func classifyPool(stats sql.DBStats) string {
	if stats.MaxOpenConnections > 0 &&
		stats.InUse >= stats.MaxOpenConnections &&
		stats.WaitCount > 0 {
		return "degraded"
	}
	return "healthy"
}
