//go:build ftmalloc_debug

package malloc

import (
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/errors"
)

// debugCheckAllocFailure panics with a categorized diagnostic when a mapping
// failure occurs. Normal builds just return the error to the caller, per the
// contract that the three entry points never raise; this tag is strictly
// for catching allocator bugs during development.
func debugCheckAllocFailure(size uintptr, err error) {
	if err != nil {
		panic(errors.OutOfMemory(size))
	}
}

// debugCheckPointer panics when a caller hands Release or Resize a pointer
// that does not look like a live allocation from this heap.
func debugCheckPointer(ptr unsafe.Pointer, valid bool, operation string) {
	if ptr != nil && !valid {
		panic(errors.InvalidPointer(operation))
	}
}
