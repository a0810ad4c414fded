//go:build ftmalloc_compact

package malloc

import "unsafe"

// blockHeader is the in-band header written immediately before every
// block's user data. The compact build omits the user-requested size to
// keep the header minimal; used_size and the text dump fall back to the
// block's data capacity (total size minus header), and the snapshot "size"
// field to the block's total size, accurate only to the block granule
// (spec invariant: looseness is acknowledged, not an error).
type blockHeader struct {
	size     uintptr // total block size, header included
	magic    uint32
	isFree   bool
	zone     *zoneHeader
	prev     *blockHeader // address-ordered intra-zone list
	next     *blockHeader
	prevFree *blockHeader // free list
	nextFree *blockHeader
}

// blockHeaderSize is rounded up to alignGranule so data pointers stay aligned.
const blockHeaderSize = (unsafe.Sizeof(blockHeader{}) + alignGranule - 1) &^ (alignGranule - 1)

// userSizeOf approximates the caller's requested size from the block total,
// since no exact value is stored in the compact header.
func userSizeOf(b *blockHeader) uintptr {
	if b.size <= blockHeaderSize {
		return 0
	}

	return b.size - blockHeaderSize
}

// setUserSize is a no-op in the compact build: there is nowhere to store it.
func setUserSize(b *blockHeader, n uintptr) {}

const verboseBuild = false
