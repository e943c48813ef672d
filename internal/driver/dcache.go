package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ruse/internal/diag"
	"ruse/internal/source"
)

// Bump when the payload format changes; stale entries then miss.
const diskCacheSchemaVersion uint16 = 1

// DiskCache keeps per-file diagnostics on disk, keyed by content
// hash. Fixes are deliberately not cached: their edits are cheap to
// recompute and keying them to stale offsets is a footgun. Safe for
// concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiag is the serialized form of one diagnostic. Spans are
// stored as bare offsets; the FileID is remapped on load.
type cachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

type diskPayload struct {
	Schema      uint16
	Path        string
	Diagnostics []cachedDiag
}

// OpenDiskCache initializes a cache under the standard user cache
// location.
func OpenDiskCache(app string) (*DiskCache, error) {
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
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "diags", hex.EncodeToString(key[:])+".mp")
}

// Store writes the diagnostics computed for file. The write is
// atomic: encode to a temp file, then rename.
func (c *DiskCache) Store(file *source.File, ds []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := diskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		Diagnostics: make([]cachedDiag, 0, len(ds)),
	}
	for _, d := range ds {
		payload.Diagnostics = append(payload.Diagnostics, cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Lookup returns the cached diagnostics for file, remapped to its
// current FileID. A schema mismatch or decode failure is a miss.
func (c *DiskCache) Lookup(file *source.File) ([]diag.Diagnostic, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	ds := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		ds = append(ds, diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		})
	}
	return ds, true
}

// DropAll discards every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
