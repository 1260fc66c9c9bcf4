package bytekit

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NewCachedSerializer wraps fn with a bounded key→bytes cache. The
// returned closure hands out defensive copies, so callers cannot
// corrupt cached entries. Eviction is handled by the LRU once capacity
// is exceeded. Not safe for concurrent use with a fn that is not.
func NewCachedSerializer[K comparable](capacity int, fn func(K) ([]byte, error)) (func(K) ([]byte, error), error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: serializer callback", ErrNilBuffer)
	}
	cache, err := lru.New[K, []byte](capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: cache capacity %d", ErrOutOfRange, capacity)
	}
	return func(key K) ([]byte, error) {
		if cached, ok := cache.Get(key); ok {
			out := make([]byte, len(cached))
			copy(out, cached)
			return out, nil
		}
		encoded, err := fn(key)
		if err != nil {
			return nil, err
		}
		stored := make([]byte, len(encoded))
		copy(stored, encoded)
		cache.Add(key, stored)
		return encoded, nil
	}, nil
}
