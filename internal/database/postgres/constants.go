package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeInvalidTextRepresentation is raised for malformed UUID input
	PgErrorCodeInvalidTextRepresentation = "22P02"
)

// Constraint names referenced when classifying errors
const (
	ConstraintAccountIdentity = "accounts_network_external_id_key"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToGetAccount        = "failed to get account"
	ErrMsgFailedToInsertAccount     = "failed to insert account"
	ErrMsgFailedToUpdateAccount     = "failed to update account display fields"
	ErrMsgFailedToCompareAndSetLock = "failed to update lock state"
	ErrMsgFailedToMarkClaimed       = "failed to mark account claimed"
)

// Error Messages - Tip Operations
const (
	ErrMsgFailedToGetTip       = "failed to get active tip"
	ErrMsgFailedToCountBackers = "failed to count backers"
	ErrMsgFailedToAppendTip    = "failed to append tip"
)
