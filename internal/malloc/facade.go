package malloc

import (
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/platform"
)

// Heap is a single allocator instance: one zoneManager plus the build's lock
// policy. The package-level convenience functions route through a lazily
// created default Heap, but nothing stops a caller from running several
// independent heaps side by side.
type Heap struct {
	lock  heapLock
	zones *zoneManager
}

// NewHeap constructs an empty heap. No zones are mapped until the first
// allocation of each class.
func NewHeap() *Heap {
	return &Heap{zones: newZoneManager()}
}

// firstFit scans a class's zone list newest zone first and, within each
// zone, its free list in most-recently-freed order, returning the first
// block whose size can satisfy allocSize.
func firstFit(m *zoneManager, class sizeClass, allocSize uintptr) (*zoneHeader, *blockHeader) {
	for z := m.zones(class); z != nil; z = z.next {
		for b := z.freeHead; b != nil; b = b.nextFree {
			if b.size >= allocSize {
				return z, b
			}
		}
	}
	return nil, nil
}

// allocateFromBlock carves size userSize out of a free block, splitting off
// and re-listing any usable remainder, and returns the user data pointer.
func allocateFromBlock(zone *zoneHeader, block *blockHeader, allocSize, userSize uintptr) unsafe.Pointer {
	freeListRemove(zone, block)

	remainder := splitBlock(block, allocSize)
	if remainder != nil {
		freeListAdd(zone, remainder)
	}

	block.isFree = false
	block.magic = allocMagic
	block.zone = zone
	setUserSize(block, userSize)

	zone.usedSize += userSizeOf(block)
	zone.blockCount++

	return dataPointer(block)
}

// Allocate returns a pointer to a region of at least size bytes, or an error
// if the request could not be satisfied. A size of zero returns (nil, nil),
// matching the C convention this allocator's callers expect.
func (h *Heap) Allocate(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, nil
	}

	h.lock.Lock()

	class := classOf(size)
	allocSize := blockTotalFor(size)

	var zone *zoneHeader
	var block *blockHeader

	if class == classLarge {
		z, err := h.zones.createZone(class, allocSize)
		if err != nil {
			h.lock.Unlock()
			debugCheckAllocFailure(size, err)
			return nil, err
		}
		zone, block = z, z.firstBlock
	} else {
		zone, block = firstFit(h.zones, class, allocSize)
		if block == nil {
			z, err := h.zones.createZone(class, 0)
			if err != nil {
				h.lock.Unlock()
				debugCheckAllocFailure(size, err)
				return nil, err
			}
			zone, block = z, z.firstBlock
		}
	}

	ptr := allocateFromBlock(zone, block, allocSize, size)
	snap := captureZoneSnapshot(h)
	h.lock.Unlock()

	recordZoneSnapshot(snap)
	return ptr, nil
}

// coalesceBlocks merges block with its address-adjacent free neighbors,
// next before prev, matching the original allocator's merge order.
func coalesceBlocks(zone *zoneHeader, block *blockHeader) {
	if block.next != nil && canMerge(block, block.next) {
		next := block.next
		freeListRemove(zone, next)
		mergeBlocks(block, next)
	}
	if block.prev != nil && canMerge(block.prev, block) {
		freeListRemove(zone, block)
		mergeBlocks(block.prev, block)
	}
}

// Release returns a previously allocated pointer to its zone's free pool,
// coalescing with adjacent free blocks and tearing down the zone if that
// empties a LARGE zone. A nil pointer, or one that does not look like a
// live allocation from this heap, is silently ignored.
func (h *Heap) Release(ptr unsafe.Pointer) error {
	if ptr == nil {
		return nil
	}

	h.lock.Lock()

	block := blockFromDataPointer(ptr)
	valid := isValid(block)
	if !valid {
		h.lock.Unlock()
		debugCheckPointer(ptr, valid, "release")
		return nil
	}

	zone := block.zone
	released := userSizeOf(block)

	block.magic = 0
	block.isFree = true
	freeListAdd(zone, block)
	zone.usedSize -= released
	zone.blockCount--

	coalesceBlocks(zone, block)

	var destroyErr error
	if zone.blockCount == 0 && zone.class == classLarge {
		destroyErr = h.zones.destroyZone(zone)
	}

	snap := captureZoneSnapshot(h)
	h.lock.Unlock()

	recordZoneSnapshot(snap)

	return destroyErr
}

// tryExtendInPlace attempts to grow block to hold neededSize total bytes by
// merging it with its next block, if that block is free and large enough.
// On success it re-splits off any excess remainder.
func tryExtendInPlace(zone *zoneHeader, block *blockHeader, neededSize uintptr) bool {
	next := block.next
	if next == nil || !next.isFree {
		return false
	}
	if block.size+next.size < neededSize {
		return false
	}

	freeListRemove(zone, next)
	mergeBlocks(block, next)

	remainder := splitBlock(block, neededSize)
	if remainder != nil {
		freeListAdd(zone, remainder)
	}
	return true
}

// Resize changes the size of an existing allocation, per the realloc
// contract: a nil ptr behaves as Allocate, a zero size behaves as Release
// and returns (nil, nil), and a shrink or in-place-growable request never
// moves the data. Otherwise a fresh block is allocated, the overlap is
// copied, and the old block is released.
func (h *Heap) Resize(ptr unsafe.Pointer, size uintptr) (unsafe.Pointer, error) {
	if ptr == nil {
		return h.Allocate(size)
	}
	if size == 0 {
		return nil, h.Release(ptr)
	}

	h.lock.Lock()

	block := blockFromDataPointer(ptr)
	valid := isValid(block)
	if !valid {
		h.lock.Unlock()
		debugCheckPointer(ptr, valid, "resize")
		return nil, nil
	}

	zone := block.zone
	neededSize := blockTotalFor(size)

	oldUser := userSizeOf(block)

	if block.size >= neededSize {
		setUserSize(block, size)
		zone.usedSize += userSizeOf(block) - oldUser
		snap := captureZoneSnapshot(h)
		h.lock.Unlock()
		recordZoneSnapshot(snap)
		return ptr, nil
	}

	if tryExtendInPlace(zone, block, neededSize) {
		setUserSize(block, size)
		zone.usedSize += userSizeOf(block) - oldUser
		snap := captureZoneSnapshot(h)
		h.lock.Unlock()
		recordZoneSnapshot(snap)
		return ptr, nil
	}

	oldUserSize := userSizeOf(block)
	h.lock.Unlock()

	newPtr, err := h.Allocate(size)
	if err != nil {
		return nil, err
	}

	copySize := oldUserSize
	if size < copySize {
		copySize = size
	}
	platform.CopyBytes(newPtr, ptr, copySize)

	if err := h.Release(ptr); err != nil {
		return nil, err
	}

	// Allocate and Release above already captured and recorded their own
	// snapshots under their own locking; re-acquire briefly to capture one
	// final snapshot reflecting the completed resize-as-move.
	h.lock.Lock()
	snap := captureZoneSnapshot(h)
	h.lock.Unlock()
	recordZoneSnapshot(snap)

	return newPtr, nil
}

var defaultHeap = NewHeap()

// Allocate routes to the process-wide default heap. Most programs need only
// this package-level form; Heap exists for callers that want isolated
// arenas.
func Allocate(size uintptr) (unsafe.Pointer, error) {
	return defaultHeap.Allocate(size)
}

// Release routes to the process-wide default heap.
func Release(ptr unsafe.Pointer) error {
	return defaultHeap.Release(ptr)
}

// Resize routes to the process-wide default heap.
func Resize(ptr unsafe.Pointer, size uintptr) (unsafe.Pointer, error) {
	return defaultHeap.Resize(ptr, size)
}
