// Package dev provides live reload for the preview server.
//
// This package implements:
//   - Polling of document descriptions and html5el.json
//   - WebSocket-based browser refresh
//   - Error overlay in the browser
//
// # Usage
//
//	reload := dev.NewReloadServer(logger)
//	watcher := dev.NewWatcher(dev.WatcherConfig{Paths: []string{"docs"}})
//	watcher.OnChange(func(c dev.Change) {
//	    reload.NotifyReload(c.Path)
//	})
//	go watcher.Start(ctx)
//
// # Reload Protocol
//
// The browser connects to /_html5el/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload", "file": "..."}                // Triggers full page reload
//	{"type": "error", "file": "...", "error": "..."} // Shows error overlay
//	{"type": "clear"}                                // Clears error overlay
package dev
