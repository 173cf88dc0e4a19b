package lists

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// JSONFile stores lists as a single JSON document. Writes go to a temporary file that
// is renamed over the original, and a sibling ".lock" file serializes access between
// processes sharing the document.
type JSONFile struct {
	path string
	lock *flock.Flock
}

// NewJSONFile creates a backend for the document at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the document path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the document. A missing file is an empty set of lists.
func (f *JSONFile) Load(ctx context.Context) (map[string][]Item, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return nil, fmt.Errorf("create list dir: %w", err)
	}
	if _, err := f.lock.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, fmt.Errorf("lock %s: %w", f.path, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return map[string][]Item{}, nil
	}

	var lists map[string][]Item
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	for name, items := range lists {
		if items == nil {
			lists[name] = []Item{}
		}
	}
	return lists, nil
}

// Save replaces the document atomically.
func (f *JSONFile) Save(ctx context.Context, lists map[string][]Item) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create list dir: %w", err)
	}
	if _, err := f.lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	data, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return fmt.Errorf("encode lists: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("rename %s: %w", f.path, err)
	}
	return nil
}
