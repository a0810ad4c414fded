//go:build !ftmalloc_debug

package malloc

import "unsafe"

func debugCheckAllocFailure(size uintptr, err error) {}

func debugCheckPointer(ptr unsafe.Pointer, valid bool, operation string) {}
