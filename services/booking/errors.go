package booking

import "errors"

// Validation errors are caller-fixable and map to 400.
var (
	ErrMissingField = errors.New("Missing required fields")
	ErrInvalidEmail = errors.New("Invalid email")
)

// Configuration errors are operator-fixable and map to 500. Their text is
// safe to surface: it never carries credential material.
var (
	ErrSheetConfigMissing = errors.New("Missing Google Sheets configuration")
	ErrTabNotFound        = errors.New("Sheet tab not found")
)

// ErrRecordFailed wraps any transport or auth failure from the
// spreadsheet provider. Fatal to the submission, no retry.
var ErrRecordFailed = errors.New("Failed to record booking")
