package edcbcache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"
)

// FileCache is a brotli-compressed on-disk cache for FileCopy/FileCopy2
// payloads, keyed by the server-side path the bytes were fetched from.
// Each entry lives under Dir at a path derived deterministically from
// its key.
type FileCache struct {
	Dir     string
	Quality int // brotli quality, 0 (fastest) to 11 (smallest); NewFileCache uses brotli.DefaultCompression
}

func NewFileCache(dir string) *FileCache {
	return &FileCache{Dir: dir, Quality: brotli.DefaultCompression}
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.Dir, safeCacheName(key)+".br")
}

// safeCacheName maps an arbitrary server path into a single path-safe
// component.
func safeCacheName(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		b := key[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '-', b == '_', b == '.':
			out = append(out, b)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// Put brotli-compresses data and writes it under key.
func (c *FileCache) Put(key string, data []byte) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("edcbcache: mkdir: %w", err)
	}
	path := c.path(key)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("edcbcache: create: %w", err)
	}
	w := brotli.NewWriterLevel(f, c.Quality)
	if _, err := w.Write(data); err != nil {
		w.Close()
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("edcbcache: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("edcbcache: compress close: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// Get reads and decompresses the cached payload for key. The second
// return value is false when no entry exists.
func (c *FileCache) Get(key string) ([]byte, bool, error) {
	f, err := os.Open(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("edcbcache: open: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		return nil, false, fmt.Errorf("edcbcache: decompress: %w", err)
	}
	return data, true, nil
}
