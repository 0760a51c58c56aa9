package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Schema errors
	ErrSchemaNotFound = "SCHEMA_NOT_FOUND"
	ErrSchemaInvalid  = "SCHEMA_INVALID"
	ErrEntityNotFound = "ENTITY_NOT_FOUND"
	ErrScopeNotFound  = "SCOPE_NOT_FOUND"

	// Relation errors
	ErrUnknownAttribute  = "UNKNOWN_ATTRIBUTE"
	ErrIncompatibleMerge = "INCOMPATIBLE_MERGE"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// File errors
	ErrFileExists     = "FILE_EXISTS"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
