package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/inoxlang/rson/internal/utils"
)

const STDIN_PATH = "-"

var (
	GZIP_MAGIC = []byte{0x1f, 0x8b}
	ZSTD_MAGIC = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

type Compression int

const (
	NoCompression Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "unknown-compression"
	}
}

// Detect returns the compression of the data read by r, nothing is consumed.
func Detect(r *bufio.Reader) Compression {
	header, _ := r.Peek(len(ZSTD_MAGIC))

	switch {
	case bytes.HasPrefix(header, ZSTD_MAGIC):
		return Zstd
	case bytes.HasPrefix(header, GZIP_MAGIC):
		return Gzip
	default:
		return NoCompression
	}
}

// Open opens the file at path, or the standard input if path is "-". Gzip and zstd content is decompressed.
func Open(path string) (io.ReadCloser, error) {
	var file io.ReadCloser

	if path == STDIN_PATH {
		file = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		file = f
	}

	reader, err := NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reader, nil
}

// NewReader returns a reader decompressing the content of r if it is compressed, closing the returned reader closes r.
func NewReader(r io.ReadCloser) (io.ReadCloser, error) {
	buffered := bufio.NewReader(r)

	switch Detect(buffered) {
	case Gzip:
		gzipReader, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("invalid gzip header: %w", err)
		}
		return &readCloser{
			Reader: gzipReader,
			close: func() error {
				return utils.CombineErrors(gzipReader.Close(), r.Close())
			},
		}, nil
	case Zstd:
		decoder, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return &readCloser{
			Reader: decoder,
			close: func() error {
				decoder.Close()
				return r.Close()
			},
		}, nil
	default:
		return &readCloser{Reader: buffered, close: r.Close}, nil
	}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}
