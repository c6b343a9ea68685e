package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxDocumentSize = 10 * 1024 * 1024 // 10 MB

// ErrRead is matched by every *ReadError via errors.Is.
var ErrRead = errors.New("read failed")

// ReadError reports that a document could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRead) true for any ReadError.
func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// Reader reads the text of a document.
type Reader interface {
	ReadText(ctx context.Context, path string) (string, error)
}

// ReaderFunc adapts a plain function to the Reader interface.
type ReaderFunc func(ctx context.Context, path string) (string, error)

// ReadText calls f.
func (f ReaderFunc) ReadText(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// FileReader reads documents from the local filesystem.
type FileReader struct {
	maxSize int64
}

// NewFileReader creates a FileReader with the default size limit.
func NewFileReader() *FileReader {
	return &FileReader{maxSize: maxDocumentSize}
}

// ReadText returns the contents of path. Every failure is a *ReadError.
func (r *FileReader) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &ReadError{Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() > r.maxSize {
		return "", &ReadError{Path: path, Err: fmt.Errorf("document larger than %d bytes", r.maxSize)}
	}

	body, err := io.ReadAll(io.LimitReader(f, r.maxSize))
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(body), nil
}

// IsDocument reports whether name looks like an HTML documentation page.
func IsDocument(name string) bool {
	return strings.HasSuffix(name, ".html")
}
