package dev

import (
	"path/filepath"

	"github.com/vango-dev/html5el/internal/config"
)

// CollectWatchPaths returns the normalized, de-duplicated watch paths: the
// document directory, the loaded config file and any extra paths. Relative
// paths are resolved against base.
func CollectWatchPaths(cfg *config.Config, base string, extra ...string) []string {
	paths := []string{cfg.Serve.Dir, cfg.Path()}
	paths = append(paths, extra...)

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		path = resolvePath(base, path)
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

func resolvePath(base, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
