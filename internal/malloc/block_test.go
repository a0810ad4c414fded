package malloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidRejectsFreeAndForeignBlocks(t *testing.T) {
	require.False(t, isValid(nil))

	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	require.False(t, isValid(z.firstBlock), "freshly created block is free, not allocated")

	z.firstBlock.magic = allocMagic
	z.firstBlock.isFree = false
	require.True(t, isValid(z.firstBlock))
}

func TestSplitBlockLeavesAddressOrderedRemainder(t *testing.T) {
	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	original := z.firstBlock
	originalSize := original.size

	remainder := splitBlock(original, 64)
	require.NotNil(t, remainder)
	require.Equal(t, uintptr(64), original.size)
	require.Equal(t, originalSize-64, remainder.size)
	require.Same(t, remainder, original.next)
	require.Same(t, original, remainder.prev)
	require.True(t, remainder.isFree)
}

func TestSplitBlockNoRemainderWhenTooSmall(t *testing.T) {
	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	original := z.firstBlock
	remainder := splitBlock(original, original.size)
	require.Nil(t, remainder)
	require.Nil(t, original.next)
}

func TestMergeBlocksCombinesSizeAndRelinks(t *testing.T) {
	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	left := z.firstBlock
	right := splitBlock(left, 64)
	require.NotNil(t, right)
	rightSize := right.size

	mergeBlocks(left, right)
	require.Equal(t, uintptr(64)+rightSize, left.size)
	require.Nil(t, left.next)
}

func TestCanMergeRequiresBothFree(t *testing.T) {
	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	right := splitBlock(z.firstBlock, 64)
	require.NotNil(t, right)
	require.True(t, canMerge(z.firstBlock, right))

	z.firstBlock.isFree = false
	require.False(t, canMerge(z.firstBlock, right))
	require.False(t, canMerge(nil, right))
}

func TestDataPointerRoundTrip(t *testing.T) {
	m := newZoneManager()
	z, err := m.createZone(classTiny, 0)
	require.NoError(t, err)

	ptr := dataPointer(z.firstBlock)
	require.Same(t, z.firstBlock, blockFromDataPointer(ptr))
}
