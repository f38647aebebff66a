package snapshots

import (
	"fmt"
	"path/filepath"
)

// MatchSnapshotPath builds the path to a matches snapshot for a given date.
func MatchSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "matches", fmt.Sprintf("%s.json", date))
}

// CatalogSnapshotPath builds the path to the competition catalog snapshot.
func CatalogSnapshotPath(basePath string) string {
	return filepath.Join(basePath, "catalog.json")
}
