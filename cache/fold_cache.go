// Package cache persists fold results on disk so that host tools (previewers,
// IDE features) can skip re-folding unchanged files. Entries are keyed by a
// digest of the source content combined with the configuration fingerprint.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/colemancda/swift-syntax/buildcfg"
	"github.com/colemancda/swift-syntax/diag"
	"github.com/colemancda/swift-syntax/source"
	"github.com/colemancda/swift-syntax/syntax"
)

// Key derives the cache key for one file under one configuration: the file's
// content hash combined with the configuration fingerprint.
func Key(file *source.File, fingerprint buildcfg.Digest) buildcfg.Digest {
	return buildcfg.Combine(file.Hash, fingerprint)
}

// Current schema version - increment when the Payload format changes.
const schemaVersion uint16 = 1

// FoldCache stores fold payloads by digest on disk.
// Thread-safe for concurrent access.
type FoldCache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is one cached fold result: the folded tree in raw form plus the
// diagnostics the pass produced, in their original order.
type Payload struct {
	Schema      uint16
	Tree        *syntax.Raw
	Diagnostics []diag.Diagnostic
}

// Open initializes and returns a fold cache at the standard location.
func Open(app string) (*FoldCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FoldCache{dir: dir}, nil
}

// OpenAt initializes a fold cache rooted at an explicit directory.
func OpenAt(dir string) (*FoldCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FoldCache{dir: dir}, nil
}

func (c *FoldCache) pathFor(key buildcfg.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory "folds" keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "folds", hexKey+".mp")
}

// Put serializes and writes a payload to the cache. The schema version is
// stamped on the stored copy; the caller's payload is left untouched.
func (c *FoldCache) Put(key buildcfg.Digest, payload *Payload) error {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stamped := *payload
	stamped.Schema = schemaVersion

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&stamped); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload. It returns (false, nil) on a miss or
// a schema mismatch, so stale entries behave like misses.
func (c *FoldCache) Get(key buildcfg.Digest, out *Payload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", p, err)
	}
	if out.Schema != schemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *FoldCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
