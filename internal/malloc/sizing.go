package malloc

import "github.com/42-Course/ft-malloc/internal/platform"

// sizeClass identifies which of the three zone classes a request belongs to.
type sizeClass uint8

const (
	classTiny sizeClass = iota
	classSmall
	classLarge
	numClasses
)

func (c sizeClass) String() string {
	switch c {
	case classTiny:
		return "TINY"
	case classSmall:
		return "SMALL"
	case classLarge:
		return "LARGE"
	default:
		return "UNKNOWN"
	}
}

const (
	// alignGranule is the alignment granule A: every user data pointer is a
	// multiple of this, and it governs header placement too.
	alignGranule = 16

	// tinyMax and smallMax are the size-class boundaries. With 4 KiB pages
	// a TINY zone holds about 340 blocks of tinyMax bytes and a SMALL zone
	// about 60 blocks of smallMax bytes.
	tinyMax  = 128
	smallMax = 4096

	// tinyZonePages and smallZonePages are the fixed page counts backing
	// the two shared classes.
	tinyZonePages  = 16
	smallZonePages = 64
)

// alignUp rounds n up to the next multiple of a (a must be a power of two).
func alignUp(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// classOf classifies a user request size.
func classOf(userSize uintptr) sizeClass {
	switch {
	case userSize <= tinyMax:
		return classTiny
	case userSize <= smallMax:
		return classSmall
	default:
		return classLarge
	}
}

// blockTotalFor returns the total bytes a block must occupy (header
// included) to satisfy a user request of userSize bytes.
func blockTotalFor(userSize uintptr) uintptr {
	return alignUp(blockHeaderSize+userSize, alignGranule)
}

// zoneSizeFor returns the total bytes a zone of the given class must map.
// TINY/SMALL zones are a fixed number of pages; LARGE zones are sized to
// exactly fit their one block, rounded up to a page multiple.
func zoneSizeFor(class sizeClass, blockTotal uintptr) uintptr {
	ps := uintptr(platform.PageSize())

	switch class {
	case classTiny:
		return tinyZonePages * ps
	case classSmall:
		return smallZonePages * ps
	default:
		return platform.AlignToPage(zoneHeaderSize + blockTotal)
	}
}
