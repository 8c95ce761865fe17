package parreduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tymbaca/parreduce-go/parreduce"
)

func TestPartitions(t *testing.T) {
	t.Run("remainder goes to earlier partitions", func(t *testing.T) {
		parts, err := parreduce.Partitions(7, 2)
		require.NoError(t, err)
		require.Equal(t, []parreduce.Partition{
			{Start: 0, End: 4},
			{Start: 4, End: 7},
		}, parts)
	})

	t.Run("fewer elements than workers", func(t *testing.T) {
		parts, err := parreduce.Partitions(1, 4)
		require.NoError(t, err)
		require.Equal(t, []parreduce.Partition{{Start: 0, End: 1}}, parts)
	})

	t.Run("even split", func(t *testing.T) {
		parts, err := parreduce.Partitions(8, 4)
		require.NoError(t, err)
		require.Len(t, parts, 4)
		for _, part := range parts {
			require.Equal(t, 2, part.Len())
		}
	})

	t.Run("zero length", func(t *testing.T) {
		parts, err := parreduce.Partitions(0, 3)
		require.NoError(t, err)
		require.Empty(t, parts)
	})

	t.Run("invalid worker count", func(t *testing.T) {
		_, err := parreduce.Partitions(10, 0)
		require.ErrorIs(t, err, parreduce.ErrInvalidWorkerCount)

		_, err = parreduce.Partitions(10, -3)
		require.ErrorIs(t, err, parreduce.ErrInvalidWorkerCount)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := parreduce.Partitions(-1, 3)
		require.Error(t, err)
	})
}

// Every (n, workers) pair must produce min(n, workers) non-empty
// partitions that cover [0, n) contiguously with sizes differing by at
// most one, larger ones first.
func TestPartitionsCover(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for workers := 1; workers <= 12; workers++ {
			parts, err := parreduce.Partitions(n, workers)
			require.NoError(t, err)
			require.Len(t, parts, min(n, workers), "n=%d workers=%d", n, workers)

			next := 0
			for i, part := range parts {
				require.Equal(t, next, part.Start, "n=%d workers=%d part=%d", n, workers, i)
				require.Greater(t, part.Len(), 0, "n=%d workers=%d part=%d", n, workers, i)
				if i > 0 {
					require.GreaterOrEqual(t, parts[i-1].Len(), part.Len(), "n=%d workers=%d part=%d", n, workers, i)
				}
				next = part.End
			}
			require.Equal(t, n, next, "n=%d workers=%d", n, workers)
			spread := parts[0].Len() - parts[len(parts)-1].Len()
			require.LessOrEqual(t, spread, 1, "n=%d workers=%d", n, workers)
		}
	}
}
