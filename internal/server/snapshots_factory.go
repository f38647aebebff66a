package server

import (
	"log/slog"

	"github.com/malanEvans/soccer-mcp-server/internal/config"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/snapshots"
	"github.com/malanEvans/soccer-mcp-server/internal/store"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.DataProvider, memoryStore *store.MemoryStore, logger *slog.Logger) snapshotComponents {
	basePath := cfg.Snapshots.SnapshotFolder
	writer := snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays)
	fsStore := snapshots.NewFSStore(basePath)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:             cfg.Snapshots.Enabled,
		Days:                cfg.Snapshots.Days,
		FutureDays:          cfg.Snapshots.FutureDays,
		Interval:            cfg.Snapshots.Interval,
		DailyHourUTC:        cfg.Snapshots.DailyHourUTC,
		CatalogRefreshHours: cfg.Snapshots.CatalogHours,
	}, logger, memoryStore)

	return snapshotComponents{
		store:  fsStore,
		writer: writer,
		syncer: syncer,
	}
}
