package site

import "log"

// Config defines the inputs for the site HTTP server.
type Config struct {
	// HTTPAddr is the listen address, host:port.
	HTTPAddr string

	// ContentPath optionally overrides the embedded portfolio document.
	ContentPath string

	// DBPath locates the SQLite preference store. Empty runs without
	// persistence; preferences then live in cookies only.
	DBPath string

	// WatchContent reloads ContentPath while the server runs.
	WatchContent bool

	// AssetBaseURL prefixes static asset URLs when assets are served from
	// a CDN instead of this process.
	AssetBaseURL string

	// TrustForwardedProto honors X-Forwarded-Proto when checking
	// same-origin proof, for deployments behind a TLS-terminating proxy.
	TrustForwardedProto bool

	Logger *log.Logger
}
