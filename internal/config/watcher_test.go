// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatcher_DebounceWindow tests the fsnotify debounce bookkeeping without
// touching the filesystem.
func TestWatcher_DebounceWindow(t *testing.T) {
	fw := &FsnotifyWatcher{debounce: 200 * time.Millisecond}
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	if fw.takeDue(t0) {
		t.Error("takeDue() with no pending change should be false")
	}

	fw.markChanged(t0)
	if fw.takeDue(t0.Add(100 * time.Millisecond)) {
		t.Error("takeDue() inside the debounce window should be false")
	}
	if !fw.takeDue(t0.Add(250 * time.Millisecond)) {
		t.Error("takeDue() after the window should be true")
	}
	if fw.takeDue(t0.Add(300 * time.Millisecond)) {
		t.Error("takeDue() should consume the pending change")
	}
}

// TestWatcher_DebounceRestartsOnChange tests that a fresh change restarts
// the quiet period.
func TestWatcher_DebounceRestartsOnChange(t *testing.T) {
	fw := &FsnotifyWatcher{debounce: 200 * time.Millisecond}
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	fw.markChanged(t0)
	fw.markChanged(t0.Add(150 * time.Millisecond))

	if fw.takeDue(t0.Add(250 * time.Millisecond)) {
		t.Error("takeDue() 100ms after the second change should be false")
	}
	if !fw.takeDue(t0.Add(400 * time.Millisecond)) {
		t.Error("takeDue() after the restarted window should be true")
	}
}

// TestWatcher_ReloadSkipsInvalidFile tests that a config revision that fails
// validation leaves the active config and never notifies.
func TestWatcher_ReloadSkipsInvalidFile(t *testing.T) {
	ResetGlobalForTesting()
	SetGlobal(Default())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ring]\nwindow_size = 4\n"), 0600); err != nil {
		t.Fatal(err)
	}

	notified := false
	reloadFromPath(path, func(*Config) { notified = true })

	if notified {
		t.Error("reload callback should not fire for an invalid file")
	}
	if Global().Ring.WindowSize != 5 {
		t.Errorf("Global window size = %d, want untouched 5", Global().Ring.WindowSize)
	}
}

// TestWatcher_ReloadSwapsGlobal tests the success path of a reload.
func TestWatcher_ReloadSwapsGlobal(t *testing.T) {
	ResetGlobalForTesting()
	SetGlobal(Default())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ring]\nwindow_size = 7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var got *Config
	reloadFromPath(path, func(cfg *Config) { got = cfg })

	if got == nil {
		t.Fatal("reload callback should fire for a valid file")
	}
	if got.Ring.WindowSize != 7 {
		t.Errorf("reloaded window size = %d, want 7", got.Ring.WindowSize)
	}
	if Global().Ring.WindowSize != 7 {
		t.Errorf("Global window size = %d, want swapped 7", Global().Ring.WindowSize)
	}
}

// TestWatcher_PollingDetectsChange tests the polling fallback end to end.
func TestWatcher_PollingDetectsChange(t *testing.T) {
	ResetGlobalForTesting()
	SetGlobal(Default())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ring]\nwindow_size = 3\n"), 0600); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan *Config, 1)
	pw := NewPollingWatcher(path, 20*time.Millisecond, func(cfg *Config) {
		select {
		case reloads <- cfg:
		default:
		}
	})
	if err := pw.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer pw.Close()

	// Longer content so a coarse mtime clock cannot hide the rewrite.
	update := "[ring]\nwindow_size = 7\n\n[theme]\nmode = \"dark\"\n"
	if err := os.WriteFile(path, []byte(update), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloads:
		if cfg.Ring.WindowSize != 7 {
			t.Errorf("reloaded window size = %d, want 7", cfg.Ring.WindowSize)
		}
		if cfg.Theme.Mode != "dark" {
			t.Errorf("reloaded theme mode = %s, want dark", cfg.Theme.Mode)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("polling watcher never observed the rewrite")
	}
}

// TestWatcher_StartWatcherSmoke tests that StartWatcher yields a working
// watcher for an existing file.
func TestWatcher_StartWatcherSmoke(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ring]\nwindow_size = 5\n"), 0600); err != nil {
		t.Fatal(err)
	}

	w, err := StartWatcher(path, nil)
	if err != nil {
		t.Fatalf("StartWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
