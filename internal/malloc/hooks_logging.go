//go:build !ftmalloc_nolog

package malloc

import (
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/snapshot"
)

// zoneSnapshot is the data a logging build captures from the zone graph for
// one operation, to be written out once the heap lock is no longer held.
type zoneSnapshot []snapshot.ZoneRecord

// captureZoneSnapshot walks every zone across all three classes and renders
// each live (non-free) block as a snapshot.BlockRecord. The caller must
// already hold h.lock: this reads the same prev/next/size/isFree fields the
// façade mutates, so it is only safe to call while the graph can't change
// out from under it.
func captureZoneSnapshot(h *Heap) zoneSnapshot {
	var zones zoneSnapshot

	for class := sizeClass(0); class < numClasses; class++ {
		for z := h.zones.zones(class); z != nil; z = z.next {
			zr := snapshot.ZoneRecord{
				Class:      class.String(),
				Address:    uintptr(unsafe.Pointer(z)),
				TotalSize:  z.totalSize,
				UsedSize:   z.usedSize,
				BlockCount: z.blockCount,
			}
			for b := z.firstBlock; b != nil; b = b.next {
				if b.isFree {
					continue
				}
				size := b.size
				if verboseBuild {
					size = userSizeOf(b)
				}
				zr.Allocations = append(zr.Allocations, snapshot.BlockRecord{
					Address: uintptr(dataPointer(b)),
					Size:    size,
				})
			}
			zones = append(zones, zr)
		}
	}

	return zones
}

// recordZoneSnapshot writes out a snapshot already captured under the lock.
// It does its own file I/O and must be called after the lock is released.
func recordZoneSnapshot(s zoneSnapshot) {
	_ = snapshot.Record(s)
}
