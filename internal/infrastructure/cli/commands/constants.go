package commands

// CLI-specific constants
const (
	// DefaultEditorCommand is the default editor command
	DefaultEditorCommand = "vi"
	// SummaryPreviewWidth bounds the summary excerpt in history listings.
	SummaryPreviewWidth = 72
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrInvalidLimit             = "--limit must be >= 0"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgClearCancelled           = "Clear cancelled."
)
