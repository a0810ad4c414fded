package malloc

import "unsafe"

// allocMagic is written into every allocated (non-free) block header. A
// free block carries magic 0. This is an integrity check, not a security
// mitigation: a caller that hands back a stale or foreign pointer is simply
// ignored rather than faulted or aborted.
const allocMagic uint32 = 0xA110C8ED

// blockFromAddr views the raw byte address addr as a block header, with the
// header living at that address.
func blockFromAddr(addr uintptr) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(addr))
}

// dataPointer derives the user-visible data pointer for a block: the first
// byte after its header. Alignment is guaranteed by construction: every
// block total is rounded up to alignGranule, and zones themselves start
// page-aligned behind a zone header whose size is a multiple of
// alignGranule, and blockHeaderSize is itself a multiple of alignGranule,
// so header-plus-offset arithmetic never misaligns the result.
func dataPointer(b *blockHeader) unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(b)) + blockHeaderSize)
}

// blockFromDataPointer is the inverse of dataPointer: given a user pointer,
// recover the header that precedes it.
func blockFromDataPointer(p unsafe.Pointer) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(uintptr(p) - blockHeaderSize))
}

// isValid reports whether a block looks like a live allocation: correct
// magic and not marked free. It does not, and cannot, detect a pointer that
// never came from this allocator at all; reading foreign memory as a
// blockHeader is inherently best-effort.
func isValid(b *blockHeader) bool {
	return b != nil && b.magic == allocMagic && !b.isFree
}

// canMerge reports whether two address-adjacent blocks in the same zone can
// be coalesced: both must be free.
func canMerge(l, r *blockHeader) bool {
	return l != nil && r != nil && l.isFree && r.isFree
}

// splitBlock splits a block of size S into a prefix of size N (the total
// just-allocated bytes need) and, if the remainder can host a minimum-sized
// block, a free remainder. It returns the remainder block (not yet linked
// into any free list — the caller owns that) or nil if no split happened.
func splitBlock(b *blockHeader, n uintptr) *blockHeader {
	remainderSize := b.size - n
	if remainderSize < blockHeaderSize+alignGranule {
		return nil
	}

	remainderAddr := uintptr(unsafe.Pointer(b)) + n
	remainder := blockFromAddr(remainderAddr)
	remainder.size = remainderSize
	remainder.isFree = true
	remainder.magic = 0
	remainder.zone = b.zone
	remainder.prevFree = nil
	remainder.nextFree = nil

	remainder.next = b.next
	remainder.prev = b
	if b.next != nil {
		b.next.prev = remainder
	}
	b.next = remainder

	b.size = n

	return remainder
}

// mergeBlocks merges address-adjacent blocks l and r into one block
// occupying l's header. The caller is responsible for having already
// removed r from the free list; l keeps whatever free-list membership it
// had. mergeBlocks only fixes up the address-ordered list and the combined
// size.
func mergeBlocks(l, r *blockHeader) {
	l.size += r.size
	l.next = r.next
	if r.next != nil {
		r.next.prev = l
	}
}
