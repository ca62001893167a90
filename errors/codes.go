package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the caller supplied an unusable argument.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidConfig indicates configuration failed to load or validate.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Execution errors
const (
	// ErrCodeSectionFailed indicates a demonstration section aborted because a callable failed.
	ErrCodeSectionFailed ErrorCode = "SECTION_FAILED"
	// ErrCodeOutputFailed indicates rendering to the output writer failed.
	ErrCodeOutputFailed ErrorCode = "OUTPUT_FAILED"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:  2,
	ErrCodeMissingField:  2,
	ErrCodeInvalidConfig: 2,
	ErrCodeSectionFailed: 3,
	ErrCodeOutputFailed:  4,
}

// ExitCode returns the process exit status for code. Unknown codes map to 1.
func ExitCode(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return 1
}
