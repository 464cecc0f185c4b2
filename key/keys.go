// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Server Surface - these keys govern the HTTP listener exposed to API consumers.
const (
	ServerHost        = "server.host"
	ServerPort        = "server.port"
	ServerCORSOrigins = "server.cors_origins"
)

// Provider Selection - these keys control which native provider script is loaded and where it lives.
const (
	ProviderName = "provider.name"
)

// Fallback Catalog - these keys configure the remote catalog queried when the native provider
// is absent, erroring, or empty.
const (
	FallbackBaseURLs = "fallback.base_urls"
)

// Response Cache - these keys bound the in-memory memoization of cacheable capability calls.
const (
	CacheCapacity  = "cache.capacity"
	CacheTTL       = "cache.ttl"
	CacheSearchTTL = "cache.search_ttl"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern command-line application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
