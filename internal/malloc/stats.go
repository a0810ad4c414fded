package malloc

// ClassStats summarizes one size class's zones.
type ClassStats struct {
	Class      string
	ZoneCount  int
	TotalSize  uintptr
	UsedSize   uintptr
	BlockCount int
}

// Stats reports per-class and aggregate occupancy across the heap's mapped
// zones.
type Stats struct {
	Classes    [numClasses]ClassStats
	TotalSize  uintptr
	UsedSize   uintptr
	BlockCount int
}

// Stats computes a snapshot of the heap's current zone occupancy. Unlike the
// logging hooks it is not written anywhere; it exists for callers (such as
// the tests) that want a cheap summary without parsing a text dump.
func (h *Heap) Stats() Stats {
	h.lock.Lock()
	defer h.lock.Unlock()

	var s Stats
	for class := sizeClass(0); class < numClasses; class++ {
		cs := ClassStats{Class: class.String()}
		for z := h.zones.zones(class); z != nil; z = z.next {
			cs.ZoneCount++
			cs.TotalSize += z.totalSize
			cs.UsedSize += z.usedSize
			cs.BlockCount += z.blockCount
		}
		s.Classes[class] = cs
		s.TotalSize += cs.TotalSize
		s.UsedSize += cs.UsedSize
		s.BlockCount += cs.BlockCount
	}
	return s
}

// Stats reports occupancy for the process-wide default heap.
func Stats() Stats {
	return defaultHeap.Stats()
}
