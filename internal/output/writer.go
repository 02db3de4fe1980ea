// Package output persists run artifacts. Writes are staged to temp files
// and renamed in one commit pass, so an aborted run leaves no torn JSON
// behind and readers only ever see complete artifacts.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 250 * time.Millisecond

type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Run is one write transaction over the output directory. The flock keeps
// two concurrent runs from interleaving renames over the same artifacts.
type Run struct {
	w      *Writer
	lock   *flock.Flock
	staged []string
}

func (w *Writer) Begin(ctx context.Context) (*Run, error) {
	lk := flock.New(filepath.Join(w.dir, ".devops-hunter.lock"))
	ok, err := lk.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock output dir: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output dir %s is locked by another run", w.dir)
	}
	return &Run{w: w, lock: lk}, nil
}

// StageJSON writes v to a temp file next to its final name.
func (r *Run) StageJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return r.stage(name, append(b, '\n'))
}

func (r *Run) StageBytes(name string, b []byte) error {
	return r.stage(name, b)
}

func (r *Run) stage(name string, b []byte) error {
	tmp := r.w.Path(name) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	r.staged = append(r.staged, name)
	return nil
}

// Commit renames every staged temp file into place and releases the lock.
func (r *Run) Commit() error {
	for _, name := range r.staged {
		final := r.w.Path(name)
		if err := os.Rename(final+".tmp", final); err != nil {
			return err
		}
	}
	r.staged = nil
	return r.lock.Unlock()
}

// Discard removes staged temp files without touching finals.
func (r *Run) Discard() {
	for _, name := range r.staged {
		_ = os.Remove(r.w.Path(name) + ".tmp")
	}
	r.staged = nil
	_ = r.lock.Unlock()
}
