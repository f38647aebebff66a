package config

import "time"

// SnapshotSyncConfig controls automatic snapshot backfill/prune behavior.
type SnapshotSyncConfig struct {
	Enabled        bool
	Days           int           // how many past days to maintain
	FutureDays     int           // how many future days to prefetch
	Interval       time.Duration // delay between snapshot fetches
	DailyHourUTC   int           // hour of day (0-23) for daily prune/backfill
	RetentionDays  int           // retention for pruning match snapshots
	CatalogHours   int           // refresh interval for the competition catalog snapshot
	AdminToken     string        // reused for refresh endpoint auth
	SnapshotFolder string        // base path for snapshots
}

func loadSnapshotSync() SnapshotSyncConfig {
	pastDays := intEnvOrDefault(envSnapshotDays, defaultSnapshotDays)
	futureDays := intEnvOrDefault(envSnapshotFuture, defaultSnapshotFuture)
	// Retain the rolling past window plus the future prefetch window.
	retentionDays := intEnvOrDefault(envSnapshotKeep, defaultSnapshotKeepDays)
	if retentionDays < pastDays+futureDays {
		retentionDays = pastDays + futureDays
	}

	return SnapshotSyncConfig{
		Enabled:        boolEnvOrDefault(envSnapshotSync, defaultSnapshotSync),
		Days:           pastDays,
		FutureDays:     futureDays,
		Interval:       durationEnvOrDefault(envSnapshotRate, defaultSnapshotInterval),
		DailyHourUTC:   intEnvOrDefault(envSnapshotHour, defaultSnapshotDailyHour),
		RetentionDays:  retentionDays,
		CatalogHours:   intEnvOrDefault(envCatalogRefresh, defaultCatalogRefreshHours),
		AdminToken:     envOrDefault(envAdminToken, ""),
		SnapshotFolder: envOrDefault(envSnapshotDir, defaultSnapshotDir),
	}
}
