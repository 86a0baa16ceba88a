package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/version-stamp/internal/config"
	"github.com/oshokin/version-stamp/internal/logger"
	"github.com/oshokin/version-stamp/internal/release"
	"github.com/oshokin/version-stamp/internal/service/stamp"
)

var (
	// configPath stores the path to the release descriptor YAML file.
	configPath string
	// outputPath is an optional version file destination.
	outputPath string
	// mainOnly restricts output to the numeric version part.
	mainOnly bool
	// logLevel sets the minimum logging level.
	logLevel string

	// rootCmd represents the base command for stamping version strings.
	rootCmd = &cobra.Command{
		Use:   "version-stamp",
		Short: "Compute the PEP 440 version string for the project.",
		Long: `Computes a PEP 440 version string from a release descriptor and prints it
or writes it to a version file.

The descriptor (major, minor, micro, kind, serial) is read from a YAML file
next to the build scripts; when the file is absent, the built-in project
version is used. A serial-zero alpha marks a pre-alpha tree: the version is
stamped with a .dev suffix derived from the latest git changeset timestamp
when the repository is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			options := &stamp.Options{
				ConfigPath: configPath,
				OutputPath: outputPath,
				MainOnly:   mainOnly,
				Out:        cmd.OutOrStdout(),
			}

			return stamp.Run(ctx, options)
		},
	}
)

// Execute runs the version-stamp CLI and exits with non-zero status on error.
func Execute() {
	release.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to release descriptor file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the version to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&mainOnly, "short", "s", false, "print only the numeric part (X.Y[.Z])")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error, fatal")
}
