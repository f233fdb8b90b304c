package transcode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/vvka-141/hashify/pkg/hashify"
)

// openInput opens path for reading, wrapping it in a gzip decompressor when
// the path carries the gzip suffix. Any open failure maps to
// hashify.ErrInputNotFound: the precondition is "exists and is readable".
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", hashify.ErrInputNotFound, path)
	}
	if !strings.HasSuffix(path, hashify.GzipSuffix) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip input %s: %w", path, err)
	}
	return &gzipReadCloser{zr: zr, f: f}, nil
}

// openOutput creates or truncates path for writing, wrapping it in a gzip
// compressor when the path carries the gzip suffix.
func openOutput(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output %s: %w", path, err)
	}
	if !strings.HasSuffix(path, hashify.GzipSuffix) {
		return f, nil
	}
	return &gzipWriteCloser{zw: gzip.NewWriter(f), f: f}, nil
}

type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

type gzipWriteCloser struct {
	zw *gzip.Writer
	f  *os.File
}

func (g *gzipWriteCloser) Write(p []byte) (int, error) {
	return g.zw.Write(p)
}

// Close flushes the compressor before closing the file. Both errors are
// checked; the compressor's takes precedence since it invalidates the data.
func (g *gzipWriteCloser) Close() error {
	zerr := g.zw.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
