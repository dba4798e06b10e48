// Package constants provides shared constants used throughout the casematch codebase.
// Column positions here are the defaults of layout.Default; every one of them can
// be overridden through configuration.
package constants

// Column layout defaults (0-indexed)
const (
	// IdentifierColumn holds the case/contract number(s) in both datasets
	IdentifierColumn = 0

	// ReportAmountColumn is the first auxiliary numeric column of the report (column H)
	ReportAmountColumn = 7

	// ReportBalanceColumn is the second auxiliary numeric column of the report (column I)
	ReportBalanceColumn = 8

	// StatusColumn is the status position inside the projected status feed
	StatusColumn = 1

	// ActiveStatus is the status literal meaning the contract is in service
	ActiveStatus = "Работа"
)

// FeedProjection lists the status-feed columns kept by projection (A, G, O, AL).
var FeedProjection = []int{0, 6, 14, 37}

// Duplicate marking defaults
const (
	// DuplicateColumn is the header of the column appended to the report
	DuplicateColumn = "Дубликат"

	// DuplicateMarker is the label written for rows sharing a canonical identifier
	DuplicateMarker = "ДУБЛЬ"
)

// Dataset names used in logs and errors
const (
	// ReportDataset names dataset A
	ReportDataset = "report"

	// StatusFeedDataset names dataset B
	StatusFeedDataset = "status feed"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// File handling constants
const (
	// ExportSuffix is appended to the source base name for default export files
	ExportSuffix = "_exported"

	// DefaultExportName is used when no source file name is known
	DefaultExportName = "exported_data.xlsx"

	// DefaultSheet is the sheet name used when writing xlsx exports
	DefaultSheet = "Sheet1"

	// UnnamedColumnPrefix names blank headers, followed by the column position
	UnnamedColumnPrefix = "Unnamed: "
)

// Config and environment constants
const (
	// EnvPrefix is the prefix for environment overrides (CASEMATCH_LAYOUT_ACTIVE_STATUS, ...)
	EnvPrefix = "CASEMATCH"

	// ConfigName is the config file base name searched in $HOME and the working directory
	ConfigName = ".casematch"
)
