package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4"
)

// LZ4Codec wraps the lz4 frame format.
type LZ4Codec struct{}

func (c *LZ4Codec) Name() string { return "lz4" }

func (c *LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *LZ4Codec) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return out, nil
}
