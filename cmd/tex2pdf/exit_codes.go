package main

import (
	"errors"
	"os"
	"os/exec"

	tex2pdf "github.com/BorisFor317/go-tex2pdf"
	"github.com/BorisFor317/go-tex2pdf/internal/manifest"
)

// Exit codes for the tex2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Successful render
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, manifest content, or document data
	ExitIO       = 3 // File not found, permission denied, missing compiler
	ExitCompiler = 4 // Compiler stage failed, timed out, or publish failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compiler errors (exit 4)
	if errors.Is(err, tex2pdf.ErrCommandFailed) ||
		errors.Is(err, tex2pdf.ErrCommandTimeout) ||
		errors.Is(err, tex2pdf.ErrPublish) {
		return ExitCompiler
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, manifest.ErrManifestNotFound) {
		return ExitIO
	}

	// Usage/manifest/data errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInputs) ||
		errors.Is(err, ErrOutputWithMany) ||
		errors.Is(err, tex2pdf.ErrUnknownEngine) ||
		errors.Is(err, tex2pdf.ErrRowValues) ||
		errors.Is(err, tex2pdf.ErrNoCommands) ||
		errors.Is(err, tex2pdf.ErrInvalidFontSize) ||
		errors.Is(err, tex2pdf.ErrInvalidMargin) ||
		errors.Is(err, tex2pdf.ErrInvalidColumnSep) ||
		errors.Is(err, tex2pdf.ErrInvalidColumnType) ||
		errors.Is(err, tex2pdf.ErrInvalidAlignment) ||
		errors.Is(err, tex2pdf.ErrInvalidColumnWidth) ||
		errors.Is(err, manifest.ErrManifestParse) ||
		errors.Is(err, manifest.ErrNoElements) ||
		errors.Is(err, manifest.ErrEmptyElement) ||
		errors.Is(err, manifest.ErrAmbiguousElement) ||
		errors.Is(err, manifest.ErrColumnType) {
		return ExitUsage
	}

	return ExitGeneral
}
