package embedding

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// snapshot is the on-disk layout of a collection.
type snapshot struct {
	Dim     int
	Vectors [][]float32
}

// Save writes the collection to w as an lz4-compressed gob stream.
func Save(w io.Writer, c *Collection) error {
	zw := lz4.NewWriter(w)

	enc := gob.NewEncoder(zw)
	if err := enc.Encode(snapshot{Dim: c.dim, Vectors: c.vectors}); err != nil {
		return fmt.Errorf("embedding: encode snapshot: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("embedding: flush snapshot: %w", err)
	}
	return nil
}

// Load reads a collection previously written by Save.
func Load(r io.Reader) (*Collection, error) {
	zr := lz4.NewReader(r)

	var snap snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("embedding: decode snapshot: %w", err)
	}

	c, err := NewCollection(snap.Vectors)
	if err != nil {
		return nil, err
	}
	if c.dim != snap.Dim {
		return nil, &ErrDimensionMismatch{Expected: snap.Dim, Actual: c.dim}
	}
	return c, nil
}
