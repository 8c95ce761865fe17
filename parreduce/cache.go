package parreduce

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Cache stores results of finished runs so that repeating a reduction
// over the same input can skip the work entirely. Reductions are pure
// and independent of the worker count, which makes the result safe to
// reuse.
//
// Keys are opaque strings produced by the engine; values are the
// JSON-encoded result. Using a cache therefore requires the element and
// result types to be JSON-encodable. A cache must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Put(ctx context.Context, key string, val []byte)
}

// cacheKey fingerprints the input with the engine name, the input
// length and a murmur3 hash of the encoded elements. The worker count
// is not part of the key: the result does not depend on the split.
func cacheKey[T any](name string, elems []T) (string, error) {
	buf, err := json.Marshal(elems)
	if err != nil {
		return "", fmt.Errorf("encode input: %w", err)
	}

	return fmt.Sprintf("%s:%d:%016x", name, len(elems), murmur3.Sum64(buf)), nil
}
