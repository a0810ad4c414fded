//go:build ftmalloc_nolog

package malloc

// zoneSnapshot carries no data under ftmalloc_nolog: internal/snapshot is
// never imported, so a build with this tag carries no JSON-marshaling or
// file-I/O overhead on the hot path.
type zoneSnapshot struct{}

func captureZoneSnapshot(h *Heap) zoneSnapshot { return zoneSnapshot{} }

func recordZoneSnapshot(s zoneSnapshot) {}
