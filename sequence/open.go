package sequence

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes every wrapped closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path and transparently decompresses gzip, zstd and lz4
// content, sniffed by magic bytes.
func openReader(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decompress(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func decompress(fh *os.File) (io.ReadCloser, error) {
	br := bufio.NewReader(fh)
	sig, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case hasMagic(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	case hasMagic(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		rc := zr.IOReadCloser()
		return &multiReadCloser{Reader: rc, closers: []io.Closer{rc, fh}}, nil
	case hasMagic(sig, lz4Magic):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: []io.Closer{fh}}, nil
	default:
		return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
	}
}

func hasMagic(sig, magic []byte) bool {
	if len(sig) < len(magic) {
		return false
	}
	for i, b := range magic {
		if sig[i] != b {
			return false
		}
	}
	return true
}
