package browser

import (
	"context"
	"errors"
	"sync"
)

// ContentCache memoizes document text by path for the life of the process.
// Entries are only removed by Invalidate; failed reads are never stored.
//
// Concurrent Gets for the same missing path may both read the file.
type ContentCache struct {
	reader Reader

	mu      sync.Mutex
	entries map[string]string
}

// NewContentCache creates an empty cache backed by reader.
func NewContentCache(reader Reader) *ContentCache {
	return &ContentCache{
		reader:  reader,
		entries: make(map[string]string),
	}
}

// Get returns the content of path, reading it on the first request.
// Read failures are returned as *ReadError.
func (c *ContentCache) Get(ctx context.Context, path string) (string, error) {
	c.mu.Lock()
	content, ok := c.entries[path]
	c.mu.Unlock()
	if ok {
		return content, nil
	}

	content, err := c.reader.ReadText(ctx, path)
	if err != nil {
		var re *ReadError
		if !errors.As(err, &re) {
			err = &ReadError{Path: path, Err: err}
		}
		return "", err
	}

	c.mu.Lock()
	c.entries[path] = content
	c.mu.Unlock()
	return content, nil
}

// Has reports whether path is cached.
func (c *ContentCache) Has(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	return ok
}

// Invalidate drops the cached content of path, if any.
func (c *ContentCache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len returns the number of cached documents.
func (c *ContentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
