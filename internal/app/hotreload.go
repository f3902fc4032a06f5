package app

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// HotReloader watches the running binary for replacement and triggers a
// callback when a newer build appears. Useful during development to prompt
// for restart after recompilation.
type HotReloader struct {
	execPath    string
	startupTime time.Time
	watcher     *fsnotify.Watcher
	stopCh      chan struct{}
	onNewBinary func()
}

// NewHotReloader creates a hot reloader watching the current executable's
// directory. Returns nil if the executable path or the watcher cannot be set
// up.
func NewHotReloader() *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}
	// go build replaces the file behind the symlink; watch the real path.
	if realPath, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = realPath
	}

	info, err := os.Stat(execPath)
	if err != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil
	}
	// Watch the directory, not the file: rebuilds remove and recreate the
	// binary, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(execPath)); err != nil {
		watcher.Close()
		return nil
	}

	return &HotReloader{
		execPath:    execPath,
		startupTime: info.ModTime(),
		watcher:     watcher,
		stopCh:      make(chan struct{}),
	}
}

// OnNewBinary sets the callback invoked when a newer binary is detected. The
// callback runs on a background goroutine; marshal to the UI thread before
// touching widgets.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.onNewBinary = callback
}

// ExecPath returns the path to the watched executable.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// StartupTime returns the binary's modification time at program start.
func (h *HotReloader) StartupTime() time.Time {
	return h.startupTime
}

// ResetBaseline updates the baseline to the current binary's mod time. Call
// when the user declines a restart to avoid repeated notifications.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.startupTime = info.ModTime()
	}
}

// Start begins watching in a background goroutine.
func (h *HotReloader) Start() {
	h.stopCh = make(chan struct{})
	go h.watchLoop()
}

// Stop ends the watcher goroutine and releases the filesystem watch.
func (h *HotReloader) Stop() {
	close(h.stopCh)
	h.watcher.Close()
}

func (h *HotReloader) watchLoop() {
	base := filepath.Base(h.execPath)
	for {
		select {
		case <-h.stopCh:
			return
		case ev, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if h.newerBinary() && h.onNewBinary != nil {
				h.onNewBinary()
				return
			}
		case _, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// newerBinary reports whether the binary on disk is newer than the baseline.
func (h *HotReloader) newerBinary() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(h.startupTime)
}

// Restart replaces the current process with a new instance of the binary.
// This function does not return on success.
func (h *HotReloader) Restart() error {
	return RestartProcess(h.execPath)
}

// RestartProcess replaces the current process with a new instance of the
// specified executable, preserving arguments and environment.
func RestartProcess(execPath string) error {
	return syscall.Exec(execPath, os.Args, os.Environ())
}
