package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fredcamaral/declaim/internal/domain/ports"
)

// PollingWatcher implements single-file watching using stat polling with a
// checksum confirmation pass. Include targets change together with the
// root deck in practice, so watching the root file is enough for preview.
type PollingWatcher struct {
	interval time.Duration
	debounce time.Duration
	events   chan ports.FileChangeEvent
	mu       sync.Mutex
	state    *fileState
	stopped  bool
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// fileState is the last observed shape of the watched file
type fileState struct {
	size     int64
	modTime  time.Time
	checksum string
}

// NewPollingWatcher creates a new polling-based file watcher
func NewPollingWatcher(interval, debounce time.Duration) *PollingWatcher {
	return &PollingWatcher{
		interval: interval,
		debounce: debounce,
		events:   make(chan ports.FileChangeEvent, 10),
		stopCh:   make(chan struct{}),
	}
}

// Watch starts watching a file for changes
func (w *PollingWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	state, err := w.scan(absPath)
	if err != nil {
		return nil, fmt.Errorf("initial scan: %w", err)
	}

	w.mu.Lock()
	w.state = state
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.pollLoop(ctx, absPath)
	}()

	return w.events, nil
}

// Stop stops the file watcher
func (w *PollingWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()

	// The poll loop takes the same mutex, so wait without holding it
	w.wg.Wait()
	close(w.events)

	return nil
}

// pollLoop continuously polls for file changes
func (w *PollingWatcher) pollLoop(ctx context.Context, path string) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	lastEventTime := time.Time{}

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			changeType, changed, err := w.check(path)
			if err != nil {
				log.Printf("watch error: %v", err)
				continue
			}
			if !changed || time.Since(lastEventTime) < w.debounce {
				continue
			}

			event := ports.FileChangeEvent{
				Path:      path,
				Type:      changeType,
				Timestamp: time.Now(),
			}

			select {
			case w.events <- event:
				lastEventTime = time.Now()
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
		}
	}
}

// check reports whether the watched file changed since the last poll.
func (w *PollingWatcher) check(path string) (ports.ChangeType, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.mu.Lock()
			existed := w.state != nil
			w.state = nil
			w.mu.Unlock()
			return ports.Deleted, existed, nil
		}
		return ports.Modified, false, fmt.Errorf("stat file: %w", err)
	}

	w.mu.Lock()
	old := w.state
	w.mu.Unlock()

	// Skip the checksum when size and mtime are untouched
	if old != nil && old.size == info.Size() && old.modTime.Equal(info.ModTime()) {
		return ports.Modified, false, nil
	}

	state, err := w.scan(path)
	if err != nil {
		return ports.Modified, false, err
	}

	w.mu.Lock()
	w.state = state
	w.mu.Unlock()

	if old == nil {
		return ports.Created, true, nil
	}
	return ports.Modified, old.checksum != state.checksum, nil
}

// scan stats and checksums the file at path
func (w *PollingWatcher) scan(path string) (*fileState, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	checksum, err := checksumFile(path)
	if err != nil {
		return nil, fmt.Errorf("calculate checksum: %w", err)
	}

	return &fileState{
		size:     info.Size(),
		modTime:  info.ModTime(),
		checksum: checksum,
	}, nil
}

// checksumFile computes the SHA-256 checksum of a file
func checksumFile(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 - watched path is supplied by the user running the tool
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
