// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER INTERFACE
// =============================================================================

// Watcher is the interface for config hot-reload implementations.
type Watcher interface {
	// Watch starts watching the config file for changes
	Watch() error

	// Close stops watching and releases resources
	Close() error
}

// ReloadFunc is invoked with each successfully parsed config revision.
// Revisions that fail to parse or validate are skipped; the previous
// config stays active.
type ReloadFunc func(*Config)

const (
	// defaultDebounce coalesces editor write bursts into one reload.
	defaultDebounce = 200 * time.Millisecond

	// defaultPollInterval is the stat cadence of the polling fallback.
	defaultPollInterval = time.Second
)

// StartWatcher watches the config file at path and hot-swaps the global
// config on change, then invokes onReload. Prefers fsnotify; falls back to
// polling when the platform refuses a watch.
func StartWatcher(path string, onReload ReloadFunc) (Watcher, error) {
	fw, err := NewFsnotifyWatcher(path, defaultDebounce, onReload)
	if err == nil {
		if err := fw.Watch(); err == nil {
			return fw, nil
		}
		fw.Close()
	}

	pw := NewPollingWatcher(path, defaultPollInterval, onReload)
	if err := pw.Watch(); err != nil {
		return nil, err
	}
	return pw, nil
}

// reloadFromPath parses the file and, on success, swaps the global config
// and notifies. Parse and validation failures leave the active config
// untouched.
func reloadFromPath(path string, onReload ReloadFunc) {
	cfg, err := LoadFromPath(path)
	if err != nil {
		return
	}
	SetGlobal(cfg)
	if onReload != nil {
		onReload(cfg)
	}
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher implements Watcher using fsnotify. It watches the config
// file's parent directory: editors replace files via rename, which would
// silently end a watch placed on the file itself.
type FsnotifyWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload ReloadFunc

	mu        sync.Mutex
	dirty     bool
	changedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// NewFsnotifyWatcher creates a new fsnotify-based config watcher.
func NewFsnotifyWatcher(path string, debounce time.Duration, onReload ReloadFunc) (*FsnotifyWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FsnotifyWatcher{
		path:     abs,
		watcher:  watcher,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for config file changes.
func (fw *FsnotifyWatcher) Watch() error {
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return err
	}

	go fw.processEvents()
	go fw.processPending()

	return nil
}

// processEvents filters directory events down to the config file.
func (fw *FsnotifyWatcher) processEvents() {
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			// Rename/Remove precede the replacement file landing; marking
			// here lets the debounce window pick up the settled content.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				fw.markChanged(time.Now())
			}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Non-fatal; keep watching.
		}
	}
}

// markChanged records a change, restarting the debounce window.
func (fw *FsnotifyWatcher) markChanged(now time.Time) {
	fw.mu.Lock()
	fw.dirty = true
	fw.changedAt = now
	fw.mu.Unlock()
}

// takeDue reports whether a pending change has sat quiet for the debounce
// window, consuming it when so.
func (fw *FsnotifyWatcher) takeDue(now time.Time) bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if !fw.dirty || now.Sub(fw.changedAt) < fw.debounce {
		return false
	}
	fw.dirty = false
	return true
}

// processPending flushes debounced changes into reloads.
func (fw *FsnotifyWatcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case <-ticker.C:
			if fw.takeDue(time.Now()) {
				reloadFromPath(fw.path, fw.onReload)
			}
		}
	}
}

// Close stops watching and releases resources.
func (fw *FsnotifyWatcher) Close() error {
	fw.cancel()
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher implements Watcher by periodically comparing the config
// file's modification time and size.
type PollingWatcher struct {
	path     string
	interval time.Duration
	onReload ReloadFunc

	mu      sync.Mutex
	modTime time.Time
	size    int64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewPollingWatcher creates a new polling-based config watcher.
func NewPollingWatcher(path string, interval time.Duration, onReload ReloadFunc) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &PollingWatcher{
		path:     path,
		interval: interval,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Watch records the file's current state and starts polling.
func (pw *PollingWatcher) Watch() error {
	if info, err := os.Stat(pw.path); err == nil {
		pw.mu.Lock()
		pw.modTime = info.ModTime()
		pw.size = info.Size()
		pw.mu.Unlock()
	}

	go pw.poll()
	return nil
}

func (pw *PollingWatcher) poll() {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			if pw.checkChanged() {
				reloadFromPath(pw.path, pw.onReload)
			}
		}
	}
}

// checkChanged stats the file and reports whether it moved since the last
// observation. A missing file is not a change; the last good config stays.
func (pw *PollingWatcher) checkChanged() bool {
	info, err := os.Stat(pw.path)
	if err != nil {
		return false
	}

	pw.mu.Lock()
	defer pw.mu.Unlock()
	if info.ModTime().Equal(pw.modTime) && info.Size() == pw.size {
		return false
	}
	pw.modTime = info.ModTime()
	pw.size = info.Size()
	return true
}

// Close stops polling.
func (pw *PollingWatcher) Close() error {
	pw.cancel()
	return nil
}
