// Package timeouts defines shared timeout constants used across the site
// service. Centralizing these values prevents drift between boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ContentReload caps how long a watcher-triggered content reload may take
// before the previous snapshot is kept.
const ContentReload = 10 * time.Second
