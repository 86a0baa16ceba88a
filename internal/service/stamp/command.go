package stamp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/version-stamp/internal/logger"
)

// Options contains inputs for the stamping entry point.
type Options struct {
	// ConfigPath is the path to the release descriptor YAML.
	// When the file does not exist, the built-in descriptor is used.
	ConfigPath string
	// OutputPath is an optional file to write the version string to.
	// When empty, the version is printed to Out.
	OutputPath string
	// MainOnly restricts output to the numeric part (X.Y[.Z]),
	// dropping pre-release and development suffixes.
	MainOnly bool
	// Out receives the version string when no output file is set.
	// Defaults to standard output.
	Out io.Writer
}

// Run executes the stamping workflow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "version-stamp")

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	s := &stamper{
		configPath: opts.ConfigPath,
		outputPath: opts.OutputPath,
		mainOnly:   opts.MainOnly,
		out:        out,
	}

	if err := s.run(ctx); err != nil {
		return fmt.Errorf("stamp version: %w", err)
	}

	return nil
}
