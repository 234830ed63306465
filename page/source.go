package page

import (
	"bytes"
	"fmt"
	"os"
)

// Source yields the document as it is right now. Every call reads it again.
type Source interface {
	Snapshot() (*Snapshot, error)
}

// FileSource is a page saved to disk together with the URL it was loaded from.
type FileSource struct {
	Path string
	URL  string
}

func (f FileSource) Snapshot() (*Snapshot, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open page failed:%w", err)
	}
	defer file.Close()

	return Load(file, f.URL)
}

// StaticSource serves an in-memory document.
type StaticSource struct {
	HTML []byte
	URL  string
}

func (s StaticSource) Snapshot() (*Snapshot, error) {
	return Load(bytes.NewReader(s.HTML), s.URL)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (*Snapshot, error)

func (f SourceFunc) Snapshot() (*Snapshot, error) {
	return f()
}
