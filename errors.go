package tex2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrRowValues reports a table row whose value count disagrees with the
	// table's declared column count. It is detected lazily while streaming
	// and is fatal for that render.
	ErrRowValues = errors.New("table row value count does not match column count")

	// Compiler invocation errors.
	ErrCommandFailed  = errors.New("compiler command failed")
	ErrCommandTimeout = errors.New("compiler command timed out")

	// ErrPublish reports that compilation succeeded but the final artifact
	// could not be moved to the output path.
	ErrPublish = errors.New("publishing output failed")

	ErrUnknownEngine = errors.New("unknown engine")
	ErrNoCommands    = errors.New("render command list cannot be empty")

	// Preamble configuration validation errors.
	ErrInvalidFontSize    = errors.New("invalid font size")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidColumnSep   = errors.New("invalid column separation")
	ErrInvalidColumnType  = errors.New("invalid column type name")
	ErrInvalidAlignment   = errors.New("invalid column alignment")
	ErrInvalidColumnWidth = errors.New("invalid column width")
)
