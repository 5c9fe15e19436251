// Package constants provides shared constants used throughout the trustreport
// codebase. This includes timeouts, pagination sizes, retry budgets, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout and retry constants for HTTP traffic against the OneTrust API.
const (
	// DefaultHTTPTimeout is the standard timeout for a single HTTP request.
	DefaultHTTPTimeout = 30 * time.Second

	// MaxFetchAttempts is the number of attempts for a single fetch before the
	// failure is treated as fatal.
	MaxFetchAttempts = 3

	// RetryBaseDelay is the delay before the first retry attempt.
	RetryBaseDelay = 1 * time.Second

	// RetryMultiplier doubles the delay between consecutive retry attempts.
	RetryMultiplier = 2

	// RunRetryAttempts is the coarser retry budget applied around whole
	// collection fetches (list + enrich), mirroring the per-report wrappers.
	RunRetryAttempts = 5

	// DefaultRetryAfter is the backoff applied to a 429 response that carries
	// no Retry-After header.
	DefaultRetryAfter = 1 * time.Second
)

// Pagination constants. The SCIM user directory and the inventory/assessment
// collections paginate differently; see internal/onetrust.
const (
	// UserInitialIndex is the 1-based startIndex of the first SCIM page.
	UserInitialIndex = 1

	// UserPageSize is the number of users requested per SCIM page.
	UserPageSize = 500

	// InventoryInitialPage is the 0-based index of the first inventory page.
	InventoryInitialPage = 0

	// InventoryPageSize is the page size for inventory and assessment
	// collections. Larger sizes are rejected by the server.
	InventoryPageSize = 50
)

// Fan-out constants.
const (
	// DefaultFanoutLimit caps the number of concurrent detail fetches when no
	// limit is configured.
	DefaultFanoutLimit = 16
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories.
	DirPermissions = 0755

	// FilePermissions is the default permission for created files.
	FilePermissions = 0644
)

// Format constants.
const (
	// TimeFormatFilename is the timestamp format used in generated filenames.
	TimeFormatFilename = "20060102150405"

	// TimeFormatDate is the calendar-date format used in report cells.
	TimeFormatDate = "2006-01-02"
)
