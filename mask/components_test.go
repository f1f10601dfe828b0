package mask_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/shipseg/mask"
	"github.com/stretchr/testify/assert"
)

// sortedSizes returns the region sizes in ascending order.
func sortedSizes(ships [][]int) []int {
	sizes := make([]int, 0, len(ships))
	for _, s := range ships {
		sizes = append(sizes, len(s))
	}
	sort.Ints(sizes)

	return sizes
}

// TestShips_TwoSeparateRegions verifies that disjoint foreground blocks
// become separate ships under 4-connectivity.
func TestShips_TwoSeparateRegions(t *testing.T) {
	b, err := mask.NewBitmap(5, 3)
	assert.NoError(t, err)
	// ship 1: 2×2 block at the left
	b.Set(0, 0, true)
	b.Set(1, 0, true)
	b.Set(0, 1, true)
	b.Set(1, 1, true)
	// ship 2: single pixel at the right
	b.Set(4, 2, true)

	ships, err := b.Ships(mask.Conn4)
	assert.NoError(t, err)
	assert.Len(t, ships, 2)
	assert.Equal(t, []int{1, 4}, sortedSizes(ships))
}

// TestShips_DiagonalConnectivity verifies that diagonally touching
// pixels are one ship under Conn8 but two under Conn4.
func TestShips_DiagonalConnectivity(t *testing.T) {
	b, err := mask.NewBitmap(3, 3)
	assert.NoError(t, err)
	b.Set(0, 0, true)
	b.Set(1, 1, true)

	ships4, err := b.Ships(mask.Conn4)
	assert.NoError(t, err)
	assert.Len(t, ships4, 2, "diagonal neighbors split under 4-connectivity")

	ships8, err := b.Ships(mask.Conn8)
	assert.NoError(t, err)
	assert.Len(t, ships8, 1, "diagonal neighbors join under 8-connectivity")
}

// TestShips_EmptyMask verifies that an all-background bitmap has no ships.
func TestShips_EmptyMask(t *testing.T) {
	b, err := mask.NewBitmap(4, 4)
	assert.NoError(t, err)

	ships, err := b.Ships(mask.Conn4)
	assert.NoError(t, err)
	assert.Empty(t, ships)
}

// TestShips_CoordinateRoundTrip verifies index → (x,y) conversion for
// every reported pixel.
func TestShips_CoordinateRoundTrip(t *testing.T) {
	b, err := mask.Decode("5 2", 3, 4)
	assert.NoError(t, err)

	ships, err := b.Ships(mask.Conn4)
	assert.NoError(t, err)
	assert.Len(t, ships, 1)
	for _, idx := range ships[0] {
		x, y := b.Coordinate(idx)
		assert.True(t, b.At(x, y), "every ship index must map to a foreground pixel")
	}
}
