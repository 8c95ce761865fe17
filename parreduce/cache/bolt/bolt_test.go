package bolt

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBolt(t *testing.T) {
	_ = os.Remove("test.db")
	ctx := context.Background()

	cache, err := New("test.db")
	require.NoError(t, err)

	_, ok := cache.Get(ctx, "sum:7:00000000deadbeef")
	require.False(t, ok)

	cache.Put(ctx, "sum:7:00000000deadbeef", []byte("28"))
	val, ok := cache.Get(ctx, "sum:7:00000000deadbeef")
	require.True(t, ok)
	require.Equal(t, []byte("28"), val)

	cache.Put(ctx, "sum:7:00000000deadbeef", []byte("29"))
	val, ok = cache.Get(ctx, "sum:7:00000000deadbeef")
	require.True(t, ok)
	require.Equal(t, []byte("29"), val)

	// entries survive reopening the file
	require.NoError(t, cache.Close())

	cache, err = New("test.db")
	require.NoError(t, err)

	val, ok = cache.Get(ctx, "sum:7:00000000deadbeef")
	require.True(t, ok)
	require.Equal(t, []byte("29"), val)

	require.NoError(t, cache.Destroy())

	cache, err = New("test.db")
	require.NoError(t, err)
	defer cache.Destroy()

	_, ok = cache.Get(ctx, "sum:7:00000000deadbeef")
	require.False(t, ok)
}
