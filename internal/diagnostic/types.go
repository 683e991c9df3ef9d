package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"checktree/internal/common"
)

// Diagnostic codes reported by index validation.
const (
	CodeLeafHasChildren     = "leaf-has-children"
	CodeBranchWithoutChild  = "branch-without-children"
	CodeParentMismatch      = "parent-mismatch"
	CodeKeyMismatch         = "key-mismatch"
	CodeMissingKey          = "missing-key"
	CodeMissingLevel        = "missing-level"
	CodeDuplicateLevel      = "duplicate-level"
	CodeWrongLevel          = "wrong-level"
	CodeUnknownLevelNode    = "unknown-level-node"
	CodeLevelGap            = "level-gap"
	CodeNegativeLevel       = "negative-level"
	CodeLevelOutOfRange     = "level-out-of-range"
	CodeCycle               = "cycle"
	CodeUnreachable         = "unreachable"
	CodeAllChildrenDisabled = "all-children-disabled"
)

// Diagnostics holds all diagnostic information from a validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Key is the formatted key of the node this relates to (if any).
	Key string
	// Level is the depth this relates to, or -1.
	Level int
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota + 1
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, key string, level int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Key:      key,
		Level:    level,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, key string, level int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Key:      key,
		Level:    level,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// IsValid returns true if there are no errors.
func (d Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Codes lists the codes of all errors followed by all warnings.
func (d Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors)+len(d.Warnings))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	for _, w := range d.Warnings {
		codes = append(codes, w.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Key != "" {
		prefix = append(prefix, "["+d.Key+"]")
	}

	if d.Level >= 0 {
		prefix = append(prefix, fmt.Sprintf("level %d", d.Level))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
