package idx

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/hupe1980/simtrack/dataset"
	"github.com/hupe1980/simtrack/datastore"
)

const (
	// typeUbyte is the only IDX element type MNIST uses.
	typeUbyte = 0x08

	gzipMagic0 = 0x1f
	gzipMagic1 = 0x8b
)

var (
	// ErrInvalidMagic is returned when the stream does not start with an
	// IDX magic header.
	ErrInvalidMagic = errors.New("idx: invalid magic header")
)

// ErrUnexpectedRank indicates an IDX payload with the wrong number of
// dimensions for the requested read.
type ErrUnexpectedRank struct {
	Expected int
	Actual   int
}

func (e *ErrUnexpectedRank) Error() string {
	return fmt.Sprintf("idx: expected rank %d, got %d", e.Expected, e.Actual)
}

// ReadImages reads an IDX image file (rank >= 2) and returns one flat
// [0, 1]-scaled float32 vector per image.
func ReadImages(r io.Reader) ([][]float32, error) {
	dims, data, err := decode(r)
	if err != nil {
		return nil, err
	}
	if len(dims) < 2 {
		return nil, &ErrUnexpectedRank{Expected: 2, Actual: len(dims)}
	}

	count := dims[0]
	pixels := 1
	for _, d := range dims[1:] {
		pixels *= d
	}

	backing := make([]float32, count*pixels)
	images := make([][]float32, count)
	for i := range images {
		vec := backing[i*pixels : (i+1)*pixels]
		for j := range vec {
			vec[j] = float32(data[i*pixels+j]) / 255
		}
		images[i] = vec
	}
	return images, nil
}

// ReadLabels reads an IDX label file (rank 1) into integer class labels.
func ReadLabels(r io.Reader) ([]int, error) {
	dims, data, err := decode(r)
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, &ErrUnexpectedRank{Expected: 1, Actual: len(dims)}
	}

	labels := make([]int, len(data))
	for i, b := range data {
		labels[i] = int(b)
	}
	return labels, nil
}

// Load reads an image blob and a label blob from a store and combines them
// into a dataset.
func Load(ctx context.Context, store datastore.Store, imagesName, labelsName string) (*dataset.Dataset, error) {
	images, err := loadImages(ctx, store, imagesName)
	if err != nil {
		return nil, err
	}
	labels, err := loadLabels(ctx, store, labelsName)
	if err != nil {
		return nil, err
	}
	return dataset.New(images, labels)
}

func loadImages(ctx context.Context, store datastore.Store, name string) ([][]float32, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("idx: open %s: %w", name, err)
	}
	defer blob.Close()

	return ReadImages(blob)
}

func loadLabels(ctx context.Context, store datastore.Store, name string) ([]int, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("idx: open %s: %w", name, err)
	}
	defer blob.Close()

	return ReadLabels(blob)
}

// decode parses an IDX stream, transparently decompressing gzip input,
// and returns the dimension sizes and the raw element bytes.
func decode(r io.Reader) ([]int, []byte, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(2)
	if err != nil {
		return nil, nil, fmt.Errorf("idx: read header: %w", err)
	}
	var src io.Reader = br
	if head[0] == gzipMagic0 && head[1] == gzipMagic1 {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("idx: gunzip: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var magic [4]byte
	if _, err := io.ReadFull(src, magic[:]); err != nil {
		return nil, nil, fmt.Errorf("idx: read magic: %w", err)
	}
	if magic[0] != 0 || magic[1] != 0 || magic[2] != typeUbyte {
		return nil, nil, ErrInvalidMagic
	}

	rank := int(magic[3])
	if rank == 0 {
		return nil, nil, ErrInvalidMagic
	}

	dims := make([]int, rank)
	total := 1
	for i := range dims {
		var d uint32
		if err := binary.Read(src, binary.BigEndian, &d); err != nil {
			return nil, nil, fmt.Errorf("idx: read dimensions: %w", err)
		}
		dims[i] = int(d)
		total *= int(d)
	}

	data := make([]byte, total)
	if _, err := io.ReadFull(src, data); err != nil {
		return nil, nil, fmt.Errorf("idx: read data: %w", err)
	}
	return dims, data, nil
}
