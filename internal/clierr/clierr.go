// Package clierr defines the CLI error taxonomy and its exit codes.
package clierr

import "errors"

// Exit codes for the error classes the CLI reports.
const (
	CodeUsage      = 1
	CodePermission = 2
	CodeDependency = 3
	CodeValidation = 4
)

// Error is a classified CLI error carrying an exit code and a remediation hint.
type Error struct {
	Code   int
	Remedy string
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usage wraps err as a usage error (bad arguments, unsupported target).
func Usage(err error, remedy string) *Error {
	return &Error{Code: CodeUsage, Remedy: remedy, Err: err}
}

// Permission wraps err as a permission error.
func Permission(err error, remedy string) *Error {
	return &Error{Code: CodePermission, Remedy: remedy, Err: err}
}

// InvalidFlagPlacement wraps err as a flag-placement error. It shares the
// permission exit code but is a distinct construction site so callers can
// attach placement-specific remediation.
func InvalidFlagPlacement(err error, remedy string) *Error {
	return &Error{Code: CodePermission, Remedy: remedy, Err: err}
}

// Dependency wraps err as a missing-dependency error (catalog or required document absent).
func Dependency(err error, remedy string) *Error {
	return &Error{Code: CodeDependency, Remedy: remedy, Err: err}
}

// Validation wraps err as a template/validation failure.
func Validation(err error, remedy string) *Error {
	return &Error{Code: CodeValidation, Remedy: remedy, Err: err}
}

// ExitCode maps err to the exit code the process should report.
// nil maps to 0; unclassified errors map to the usage code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Code
	}
	return CodeUsage
}

// Remedy returns the remediation hint attached to err, if any.
func Remedy(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Remedy
	}
	return ""
}
