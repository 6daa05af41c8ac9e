package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for a render run.
type buildFlags struct {
	output      string
	engine      string
	timeout     time.Duration
	texOnly     bool
	keepScratch bool
	workers     int
	verbose     bool
	quiet       bool
	version     bool
}

const usageText = `Usage: tex2pdf [flags] manifest.yaml [manifest.yaml ...]

Renders YAML document manifests to PDF via a LaTeX engine, or to .tex
source with --tex-only. Each input produces a sibling output file unless
-o is given (single input only).

Flags:
`

func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("tex2pdf", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output path (requires exactly one input)")
	fs.StringVar(&f.engine, "engine", "pdflatex", "LaTeX engine: pdflatex, xelatex, lualatex, tectonic")
	fs.DurationVar(&f.timeout, "timeout", 30*time.Second, "per-stage compiler timeout")
	fs.BoolVar(&f.texOnly, "tex-only", false, "write the generated .tex source instead of compiling")
	fs.BoolVar(&f.keepScratch, "keep-scratch", false, "keep the scratch directory for diagnostics")
	fs.IntVarP(&f.workers, "workers", "j", 0, "parallel renders (0 = one per CPU, capped)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "forward compiler output to stderr")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-file progress output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if f.timeout <= 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive", ErrUsage)
	}
	return f, fs.Args(), nil
}
