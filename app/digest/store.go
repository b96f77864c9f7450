package digest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the digest collection as a single JSON document. Every save
// rewrites the whole file; concurrent runs against one path are unsupported.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing file yields an empty collection;
// a file that exists but does not decode is an error.
func (s *Store) Load() (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Collection{Posts: []Digest{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var collection Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}

	if collection.Posts == nil {
		collection.Posts = []Digest{}
	}

	return &collection, nil
}

// Save replaces the file with the full collection, two-space indented. The
// document is written to a sibling temp file and renamed into place, so a
// failed save leaves the previous history intact.
func (s *Store) Save(collection *Collection) error {
	data, err := Encode(collection)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".posts-*.json")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode renders v the way the store writes it: indented, with HTML
// characters left unescaped.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode digest collection: %w", err)
	}

	return buf.Bytes(), nil
}
