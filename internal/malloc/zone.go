package malloc

import (
	"fmt"
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/platform"
)

// zoneHeader sits at the start of every mmap'd zone. The first block always
// begins immediately after it.
type zoneHeader struct {
	class      sizeClass
	totalSize  uintptr
	usedSize   uintptr
	blockCount int
	firstBlock *blockHeader
	freeHead   *blockHeader
	prev       *zoneHeader // class-list links, owned by the zone manager
	next       *zoneHeader
}

// backingSlice reconstructs the byte slice platform.MapAnonymous originally
// returned for this zone, for handing to platform.Unmap. The zone header
// itself lives at the front of that region, so its address and totalSize
// are all that is needed to recover it.
func (z *zoneHeader) backingSlice() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(z)), int(z.totalSize))
}

const zoneHeaderSize = unsafe.Sizeof(zoneHeader{})

// zoneManager holds the process-wide per-class zone lists. It is plain
// shared state: callers (the façade) are responsible for serializing access
// to it the way the build's lock policy requires.
type zoneManager struct {
	heads [numClasses]*zoneHeader
}

func newZoneManager() *zoneManager {
	return &zoneManager{}
}

// zones returns the head of the class list for iteration; callers walk it
// via zoneHeader.next.
func (m *zoneManager) zones(class sizeClass) *zoneHeader {
	return m.heads[class]
}

// linkZone pushes a newly created zone to the head of its class list.
func (m *zoneManager) linkZone(z *zoneHeader) {
	z.next = m.heads[z.class]
	z.prev = nil
	if z.next != nil {
		z.next.prev = z
	}
	m.heads[z.class] = z
}

// unlinkZone removes a zone from its class list without unmapping it.
func (m *zoneManager) unlinkZone(z *zoneHeader) {
	if z.prev != nil {
		z.prev.next = z.next
	} else {
		m.heads[z.class] = z.next
	}
	if z.next != nil {
		z.next.prev = z.prev
	}
	z.prev = nil
	z.next = nil
}

// createZone maps a new zone of the given class sized to hold at least one
// block of blockTotal bytes (ignored for TINY/SMALL, which are always
// fixed-size), installs a single free block spanning the data region, and
// links it into the manager.
func (m *zoneManager) createZone(class sizeClass, blockTotal uintptr) (*zoneHeader, error) {
	size := zoneSizeFor(class, blockTotal)

	region, err := platform.MapAnonymous(int(size))
	if err != nil {
		return nil, fmt.Errorf("malloc: create %s zone: %w", class, err)
	}

	z := (*zoneHeader)(unsafe.Pointer(&region[0]))
	*z = zoneHeader{
		class:     class,
		totalSize: size,
	}

	firstAddr := uintptr(unsafe.Pointer(&region[0])) + zoneHeaderSize
	first := blockFromAddr(firstAddr)
	first.size = size - zoneHeaderSize
	first.isFree = true
	first.magic = 0
	first.zone = z
	first.prev = nil
	first.next = nil
	first.prevFree = nil
	first.nextFree = nil

	z.firstBlock = first
	z.freeHead = first

	m.linkZone(z)

	return z, nil
}

// destroyZone unlinks and unmaps a zone. Only ever called for LARGE zones
// whose sole block has just been released; TINY/SMALL zones live for the
// process lifetime once created.
func (m *zoneManager) destroyZone(z *zoneHeader) error {
	m.unlinkZone(z)

	if err := platform.Unmap(z.backingSlice()); err != nil {
		return fmt.Errorf("malloc: destroy %s zone: %w", z.class, err)
	}

	return nil
}

// freeListRemove unlinks a block from its zone's free list.
func freeListRemove(z *zoneHeader, b *blockHeader) {
	if b.prevFree != nil {
		b.prevFree.nextFree = b.nextFree
	} else {
		z.freeHead = b.nextFree
	}
	if b.nextFree != nil {
		b.nextFree.prevFree = b.prevFree
	}
	b.prevFree = nil
	b.nextFree = nil
}

// freeListAdd prepends a block to its zone's free list.
func freeListAdd(z *zoneHeader, b *blockHeader) {
	b.prevFree = nil
	b.nextFree = z.freeHead
	if z.freeHead != nil {
		z.freeHead.prevFree = b
	}
	z.freeHead = b
}
