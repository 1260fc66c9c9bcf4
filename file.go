package bytekit

import (
	"context"
	"io"
	"os"
)

const fileChunk = 64 * 1024

// WriteFile writes the whole buffer to path, checking ctx between
// chunks so a cancellation aborts mid-file with the context's error.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if data == nil {
		return ErrNilBuffer
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for off := 0; off < len(data); off += fileChunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(off+fileChunk, len(data))
		if _, err := f.Write(data[off:end]); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.Close()
}

// ReadFile reads the whole file at path, checking ctx between chunks.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []byte
	chunk := make([]byte, fileChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := f.Read(chunk)
		out = append(out, chunk[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
