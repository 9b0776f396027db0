package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cswinter/ron-parser/source"
	"github.com/cswinter/ron-parser/value"
)

// Digest is a SHA-256 content hash.
type Digest = [sha256.Size]byte

// Increment when diskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores fully resolved trees keyed by the content hash of the
// file they were loaded from. An entry is valid only while every file it
// transitively included still hashes the same.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// diskPayload is the on-disk record for one resolved file.
type diskPayload struct {
	Schema uint16

	Path string

	// Transitive includes, used for invalidation.
	DepPaths  []string
	DepHashes []Digest

	Root valueSnapshot
}

// OpenDiskCache initializes a disk cache at the standard user cache
// location for the given application name.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "trees", hexKey+".mp")
}

func (c *DiskCache) put(key Digest, payload *diskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement.
	return os.Rename(f.Name(), p)
}

func (c *DiskCache) get(key Digest, out *diskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
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

// diskGet returns a valid cached tree for the file, or reports a miss.
// Corrupt or stale entries count as misses.
func (l *Loader) diskGet(canon string, key Digest) (value.Value, bool) {
	if l.opts.DiskCache == nil {
		return nil, false
	}
	var payload diskPayload
	ok, err := l.opts.DiskCache.get(key, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion || payload.Path != canon {
		return nil, false
	}
	if len(payload.DepPaths) != len(payload.DepHashes) {
		return nil, false
	}
	for i, dep := range payload.DepPaths {
		content, err := os.ReadFile(dep)
		if err != nil || sha256.Sum256(source.NormalizeContent(content)) != payload.DepHashes[i] {
			return nil, false
		}
	}
	v, err := restoreValue(payload.Root)
	if err != nil {
		return nil, false
	}
	l.deps[canon] = append([]string(nil), payload.DepPaths...)
	return v, true
}

// diskPut caches a cleanly resolved tree. Failures are ignored: the
// cache is an accelerator, not a source of truth.
func (l *Loader) diskPut(canon string, key Digest, v value.Value) {
	if l.opts.DiskCache == nil {
		return
	}
	root, err := snapshotValue(v)
	if err != nil {
		return
	}
	payload := diskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   canon,
		Root:   root,
	}
	for _, dep := range dedupe(l.deps[canon]) {
		f, ok := l.fs.GetByPath(dep)
		if !ok {
			return
		}
		payload.DepPaths = append(payload.DepPaths, dep)
		payload.DepHashes = append(payload.DepHashes, f.Hash)
	}
	_ = l.opts.DiskCache.put(key, &payload)
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
