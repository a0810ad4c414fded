// Command ft-malloc-demo exercises the allocator with a small scripted
// workload and prints its final state, the way the original project's
// driver programs did.
package main

import (
	"flag"
	"fmt"
	"os"
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/malloc"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		verbose     = flag.Bool("verbose", false, "include block headers in the dump")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs a small allocate/free workload and dumps the heap.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Println("ft-malloc-demo 1.0.0")
		os.Exit(0)
	}

	if err := run(*verbose); err != nil {
		fmt.Fprintln(os.Stderr, "ft-malloc-demo:", err)
		os.Exit(1)
	}
}

func run(verbose bool) error {
	words := []string{"Hello", "Dynamic", "Memory", "Management", "In", "Go"}

	var list [][]byte
	for _, w := range words {
		ptr, err := malloc.Allocate(uintptr(len(w)))
		if err != nil {
			return fmt.Errorf("allocate %q: %w", w, err)
		}
		buf := bytesFromPointer(ptr, len(w))
		copy(buf, w)
		list = append(list, buf)
	}

	printList(list)

	list = list[:len(list)-2]

	printList(list)

	for _, buf := range list {
		if err := malloc.Release(pointerFromBytes(buf)); err != nil {
			return fmt.Errorf("release: %w", err)
		}
	}

	return malloc.Dump(os.Stdout, verbose)
}

// bytesFromPointer and pointerFromBytes bridge the allocator's unsafe.Pointer
// API to ordinary Go byte slices for this demo's own bookkeeping. The slice
// never outlives the block it views: once Release is called the memory is
// back in the allocator's free pool.
func bytesFromPointer(ptr unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(ptr), n)
}

func pointerFromBytes(buf []byte) unsafe.Pointer {
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

func printList(list [][]byte) {
	fmt.Printf("List contents (%d items):\n", len(list))
	for i, buf := range list {
		fmt.Printf("  [%d] %s\n", i, buf)
	}
}
