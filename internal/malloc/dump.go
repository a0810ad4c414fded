package malloc

import (
	"io"
	"unsafe"

	"github.com/42-Course/ft-malloc/internal/dump"
)

// Dump renders the heap's current zone and allocation layout to w. The
// verbose flag additionally prints each live block's header address and
// total block size; passing it false omits that line even on a verbose
// build, since the two are independent: what the header stores and what a
// given dump call chooses to print.
func (h *Heap) Dump(w io.Writer, verbose bool) error {
	h.lock.Lock()
	zones := make([]dump.ZoneView, 0)

	for class := sizeClass(0); class < numClasses; class++ {
		for z := h.zones.zones(class); z != nil; z = z.next {
			zv := dump.ZoneView{
				Class: z.class.String(),
				Addr:  uintptr(unsafe.Pointer(z)),
			}
			for b := z.firstBlock; b != nil; b = b.next {
				if b.isFree {
					continue
				}
				zv.Blocks = append(zv.Blocks, dump.BlockView{
					UserAddr:   uintptr(dataPointer(b)),
					UserSize:   userSizeOf(b),
					HeaderAddr: uintptr(unsafe.Pointer(b)),
					BlockSize:  b.size,
				})
			}
			zones = append(zones, zv)
		}
	}
	h.lock.Unlock()

	return dump.Write(w, zones, verbose)
}

// Dump renders the process-wide default heap's state.
func Dump(w io.Writer, verbose bool) error {
	return defaultHeap.Dump(w, verbose)
}
