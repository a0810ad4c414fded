package platform

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestPageSize(t *testing.T) {
	ps := PageSize()
	require.Greater(t, ps, 0)
	require.Equal(t, ps, PageSize(), "page size must be stable across calls")
}

func TestAlignToPage(t *testing.T) {
	ps := uintptr(PageSize())
	require.Equal(t, ps, AlignToPage(1))
	require.Equal(t, ps, AlignToPage(ps))
	require.Equal(t, 2*ps, AlignToPage(ps+1))
}

func TestMapAndUnmap(t *testing.T) {
	region, err := MapAnonymous(PageSize())
	require.NoError(t, err)
	require.Len(t, region, PageSize())

	for i := range region {
		region[i] = 0xAB
	}
	for _, b := range region {
		require.Equal(t, byte(0xAB), b)
	}

	require.NoError(t, Unmap(region))
}

func TestMapInvalidSize(t *testing.T) {
	_, err := MapAnonymous(0)
	require.Error(t, err)
}

func TestCopyBytes(t *testing.T) {
	src := []byte("hello, ft-malloc")
	dst := make([]byte, len(src))

	CopyBytes(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(len(src)))
	require.Equal(t, src, dst)
}
