//go:build !ftmalloc_compact

package malloc

import "unsafe"

// blockHeader is the in-band header written immediately before every block's
// user data. In the verbose build (the default) it additionally stores the
// exact user-requested size, which makes used_size accounting on resize and
// the snapshot/text-dump "size" field exact rather than block-granule.
type blockHeader struct {
	size     uintptr // total block size, header included
	userSize uintptr // exact bytes the caller asked for
	magic    uint32
	isFree   bool
	zone     *zoneHeader
	prev     *blockHeader // address-ordered intra-zone list
	next     *blockHeader
	prevFree *blockHeader // free list
	nextFree *blockHeader
}

const blockHeaderSize = unsafe.Sizeof(blockHeader{})

// userSizeOf returns the exact number of bytes the caller requested.
func userSizeOf(b *blockHeader) uintptr {
	return b.userSize
}

// setUserSize records the caller's requested size on the header.
func setUserSize(b *blockHeader, n uintptr) {
	b.userSize = n
}

const verboseBuild = true
