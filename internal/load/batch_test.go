package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	items := make([]int, 57)
	for i := range items {
		items[i] = i
	}

	batches := Partition(items, 25)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 25)
	assert.Len(t, batches[1], 25)
	assert.Len(t, batches[2], 7)

	// Order is preserved across batch boundaries.
	assert.Equal(t, 24, batches[0][24])
	assert.Equal(t, 25, batches[1][0])
	assert.Equal(t, 56, batches[2][6])
}

func TestPartition_ExactMultiple(t *testing.T) {
	batches := Partition(make([]int, 50), 25)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 25)
	assert.Len(t, batches[1], 25)
}

func TestPartition_SmallerThanCapacity(t *testing.T) {
	batches := Partition([]int{1, 2, 3}, 25)
	require.Len(t, batches, 1)
	assert.Equal(t, []int{1, 2, 3}, batches[0])
}

func TestPartition_Degenerate(t *testing.T) {
	assert.Nil(t, Partition([]int{}, 25))
	assert.Nil(t, Partition([]int{1}, 0))
	assert.Nil(t, Partition[int](nil, -1))
}
