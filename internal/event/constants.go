package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Error message constants
const (
	// ErrMsgHandlerFailedFormat wraps the joined handler errors so callers can still match them
	ErrMsgHandlerFailedFormat = "encountered %d errors while handling event %s: %w"
)
