package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for history and config files (rw-------)
	SecureFilePermissions = 0o600
)

// API defaults
const (
	DefaultAPIBaseURL     = "https://article-extractor-and-summarizer.p.rapidapi.com"
	DefaultAPIHost        = "article-extractor-and-summarizer.p.rapidapi.com"
	DefaultAuthEnvVar     = "RAPID_API_ARTICLE_KEY"
	DefaultSummaryLength  = 3
	DefaultTimeoutSeconds = 30
)

// Storage defaults
const (
	// DefaultHistoryKey is the name of the durable entry holding the history.
	DefaultHistoryKey = "articles"
	// DefaultRedisAddr is used when storage.redis.addr is empty.
	DefaultRedisAddr = "localhost:6379"
	// DefaultRedisPrefix namespaces entry keys in redis.
	DefaultRedisPrefix = "brief:"
)

// UI defaults
const (
	// DefaultHistoryHeight is the number of history rows visible at once.
	DefaultHistoryHeight = 8
	// DefaultHistoryLimit is the default number of history records to list
	DefaultHistoryLimit = 20
	// CopyResetDelay is how long the "copied" marker stays visible.
	CopyResetDelay = 3000 * time.Millisecond
)
