// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anibridge is the canonical application identifier used for filesystem paths and CLI branding.
	Anibridge = "anibridge"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies the application on requests to the fallback catalog API,
	// as required by its usage policy.
	UserAgent = "anibridge/" + Version + " (+https://github.com/anibridge/anibridge)"

	// BrowserUserAgent mimics a desktop browser for provider scripts that scrape
	// consumer-facing sites directly.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, stamped by the release pipeline via ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
