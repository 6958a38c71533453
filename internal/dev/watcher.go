package dev

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/html5el/internal/config"
	"github.com/vango-dev/html5el/pkg/document"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeDocument is a written or created document description.
	ChangeDocument ChangeType = iota
	// ChangeConfig is a change to html5el.json.
	ChangeConfig
	// ChangeRemoved is a deleted document or config file.
	ChangeRemoved
)

func (t ChangeType) String() string {
	switch t {
	case ChangeDocument:
		return "document"
	case ChangeConfig:
		return "config"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories or files to watch.
	Paths []string

	// Ignore patterns to skip (globs).
	Ignore []string

	// Interval is the delay between polls.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls the file system for document and config changes.
type Watcher struct {
	config     WatcherConfig
	onChange   func(Change)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches until ctx is cancelled or Stop is called. It blocks.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scanInitial builds the initial timestamp map.
func (w *Watcher) scanInitial() {
	current := w.scan()

	w.mu.Lock()
	w.timestamps = current
	w.mu.Unlock()
}

// scan returns the modification times of every watched file.
func (w *Watcher) scan() map[string]time.Time {
	found := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if p == root {
				if !info.IsDir() && watched(p) {
					found[p] = info.ModTime()
				}
				return nil
			}
			// Ignore rules apply below the root only.
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.shouldIgnore(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.shouldIgnore(rel) || !watched(p) {
				return nil
			}
			found[p] = info.ModTime()
			return nil
		})
	}
	return found
}

// checkForChanges compares a fresh scan with the last one and reports
// every changed path once, in path order.
func (w *Watcher) checkForChanges() {
	current := w.scan()

	w.mu.Lock()
	callback := w.onChange
	previous := w.timestamps
	w.timestamps = current
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changes []Change
	for p, modTime := range current {
		if last, ok := previous[p]; !ok || !modTime.Equal(last) {
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
	}
	for p := range previous {
		if _, ok := current[p]; !ok {
			changes = append(changes, Change{Path: p, Type: ChangeRemoved})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Path < changes[j].Path
	})
	for _, change := range changes {
		callback(change)
	}
}

// shouldIgnore checks if a path, relative to its watched root, should be
// ignored.
func (w *Watcher) shouldIgnore(relPath string) bool {
	name := filepath.Base(relPath)
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if name == pattern {
			return true
		}

		hasPathSep := strings.Contains(pattern, "/") || strings.Contains(pattern, "\\")
		hasGlob := strings.ContainsAny(pattern, "*?[")

		if hasGlob {
			if hasPathSep {
				if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if hasPathSep {
			if pathMatchesSegments(normalized, filepath.ToSlash(pattern)) {
				return true
			}
			continue
		}

		if pathHasSegment(normalized, pattern) {
			return true
		}
	}

	return false
}

func pathHasSegment(path, segment string) bool {
	if segment == "" {
		return false
	}
	for _, part := range splitPathSegments(path) {
		if part == segment {
			return true
		}
	}
	return false
}

func pathMatchesSegments(path, pattern string) bool {
	pathParts := splitPathSegments(path)
	patternParts := splitPathSegments(pattern)
	if len(patternParts) == 0 || len(patternParts) > len(pathParts) {
		return false
	}

	for i := 0; i <= len(pathParts)-len(patternParts); i++ {
		match := true
		for j := range patternParts {
			if pathParts[i+j] != patternParts[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

func splitPathSegments(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	result := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}

// watched reports whether p is a document description or the config file.
func watched(p string) bool {
	return filepath.Base(p) == config.ConfigFileName || document.IsDescription(p)
}

// classifyChange determines the type of change of an existing file.
func classifyChange(p string) ChangeType {
	if filepath.Base(p) == config.ConfigFileName {
		return ChangeConfig
	}
	return ChangeDocument
}
