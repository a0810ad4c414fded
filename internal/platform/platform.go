// Package platform provides the thin OS boundary the allocator builds on:
// page size discovery and page-aligned anonymous memory mapping. Nothing
// above this package is allowed to call into golang.org/x/sys/unix directly.
package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

var (
	pageSizeOnce   sync.Once
	cachedPageSize int
)

// PageSize returns the system page size in bytes, caching the result since
// it never changes for the lifetime of the process.
func PageSize() int {
	pageSizeOnce.Do(func() {
		cachedPageSize = unix.Getpagesize()
		if cachedPageSize <= 0 {
			cachedPageSize = 4096
		}
	})

	return cachedPageSize
}

// AlignToPage rounds n up to the next multiple of the system page size.
func AlignToPage(n uintptr) uintptr {
	ps := uintptr(PageSize())

	return (n + ps - 1) &^ (ps - 1)
}

// MapAnonymous maps a page-aligned, anonymous, private, read-write region of
// at least n bytes. The caller owns the returned slice and must pass it to
// Unmap exactly once when done; nothing else keeps it alive, so the caller
// must not let it be garbage collected while raw pointers into it are live.
func MapAnonymous(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("platform: invalid map size %d", n)
	}

	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("platform: mmap %d bytes: %w", n, err)
	}

	return data, nil
}

// Unmap releases a region previously returned by MapAnonymous.
func Unmap(region []byte) error {
	if len(region) == 0 {
		return nil
	}

	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("platform: munmap: %w", err)
	}

	return nil
}

// CopyBytes copies n bytes from src to dst. Both pointers must reference at
// least n valid bytes; this is used for the realloc grow-by-new-allocation
// path where the allocator already knows both regions are large enough.
func CopyBytes(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}

	dstSlice := unsafe.Slice((*byte)(dst), n)
	srcSlice := unsafe.Slice((*byte)(src), n)
	copy(dstSlice, srcSlice)
}
