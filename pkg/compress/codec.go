// Package compress wraps platform compression codecs behind one
// interface and a name-keyed registry. The codecs are external
// collaborators; this package only guarantees that compress/decompress
// round-trip and that malformed input fails as ErrInvalidData.
package compress

import (
	"errors"
	"fmt"
	"sync"
)

// Codec is one compression algorithm.
type Codec interface {
	Name() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var ErrInvalidData = errors.New("invalid compressed data")

// Factory creates a new codec instance.
type Factory func() Codec

var (
	mu     sync.RWMutex
	codecs = make(map[string]Factory)
)

// Register adds a codec factory under name.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	codecs[name] = factory
}

// Get returns a new codec instance for name.
func Get(name string) (Codec, error) {
	mu.RLock()
	factory, ok := codecs[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown codec: %s", name)
	}
	return factory(), nil
}

// Available lists the registered codec names.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	return names
}

func init() {
	Register("gzip", func() Codec { return &GzipCodec{} })
	Register("deflate", func() Codec { return &DeflateCodec{} })
	Register("brotli", func() Codec { return &BrotliCodec{} })
	Register("lz4", func() Codec { return &LZ4Codec{} })
	Register("zstd", func() Codec { return &ZstdCodec{} })
}
