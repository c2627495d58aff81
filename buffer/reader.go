package buffer

import (
	"bytes"
	"io"
)

// NewReader materializes a Slice from a stream. The core never needs
// partial reads mid-algorithm (diff and patch both require random access
// to the full buffer), so this reads the stream to completion up front
// rather than keeping it lazily open.
func NewReader(r io.Reader) (Slice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Slice{}, err
	}
	return New(data), nil
}

// GetInputStream exposes s as an io.Reader, satisfying the external
// buffer-primitive contract for callers that want to stream the content
// back out (e.g. writing a patched buffer to a file).
func (s Slice) GetInputStream() io.Reader {
	return bytes.NewReader(s.data)
}
