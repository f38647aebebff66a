package config

import "time"

const (
	envPort           = "PORT"
	envPublicURL      = "PUBLIC_URL"
	envPollInterval   = "POLL_INTERVAL"
	envProvider       = "PROVIDER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken     = "ADMIN_TOKEN"
	envSnapshotDir    = "SNAPSHOT_DIR"
	envSnapshotSync   = "SNAPSHOT_SYNC_ENABLED"
	envSnapshotDays   = "SNAPSHOT_SYNC_DAYS"
	envSnapshotFuture = "SNAPSHOT_FUTURE_DAYS"
	envSnapshotRate   = "SNAPSHOT_SYNC_INTERVAL"
	envSnapshotHour   = "SNAPSHOT_DAILY_HOUR"
	envSnapshotKeep   = "SNAPSHOT_RETENTION_DAYS"
	envCatalogRefresh = "SNAPSHOT_CATALOG_REFRESH_HOURS"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Conservative default poll interval to respect upstream quotas (football-data free tier: 10 req/min).
	defaultPollInterval   = 2 * Duration(time.Minute)
	defaultMetricsPort    = "9090"
	defaultSnapshotDir    = "data/snapshots"
	defaultSnapshotSync   = true
	defaultSnapshotDays   = 7
	defaultSnapshotFuture = 7
	// Snapshot fetch cadence during backfill; spaced to stay under upstream quota and leave headroom.
	defaultSnapshotInterval = 90 * Duration(time.Second)
	// UTC hour to run daily snapshot prune/backfill (2 AM UTC by default).
	defaultSnapshotDailyHour   = 2
	defaultSnapshotKeepDays    = 14
	defaultCatalogRefreshHours = 24
)
