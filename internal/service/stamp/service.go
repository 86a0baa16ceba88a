package stamp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oshokin/version-stamp/internal/config"
	"github.com/oshokin/version-stamp/internal/logger"
	"github.com/oshokin/version-stamp/internal/release"
)

// outputFilePermissions applies to stamped version files, which are
// plain build artifacts meant to be readable by anything downstream.
const outputFilePermissions = 0o644

// stamper resolves a release descriptor and emits its version string.
// It is unexported—callers should use Run, which encapsulates setup.
type stamper struct {
	// configPath is where the release descriptor YAML is looked up.
	configPath string
	// outputPath is the version file destination, empty for writer output.
	outputPath string
	// mainOnly drops the pre-release and development suffixes.
	mainOnly bool
	// out receives the rendered version when no output file is set.
	out io.Writer
}

// run resolves the descriptor, renders the version and delivers it.
func (s *stamper) run(ctx context.Context) error {
	descriptor, err := s.resolveDescriptor(ctx)
	if err != nil {
		return err
	}

	version := release.Version(&descriptor)
	if s.mainOnly {
		version = release.MainVersion(&descriptor)
	}

	if s.outputPath == "" {
		_, err = fmt.Fprintln(s.out, version)
		return err
	}

	if err = os.WriteFile(filepath.Clean(s.outputPath), []byte(version+"\n"), outputFilePermissions); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}

	logger.InfoKV(ctx, "Stamped version file",
		"version", version,
		"path", s.outputPath)

	return nil
}

// resolveDescriptor picks the descriptor source: the YAML file when it
// exists, the built-in descriptor otherwise.
func (s *stamper) resolveDescriptor(ctx context.Context) (release.Descriptor, error) {
	path := s.configPath
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if _, err := os.Stat(path); err != nil {
		// Only a genuinely absent file selects the built-in descriptor.
		// Anything else (e.g. permission denied) must not silently stamp
		// the wrong version.
		if !errors.Is(err, fs.ErrNotExist) {
			return release.Descriptor{}, fmt.Errorf("stat release descriptor: %w", err)
		}

		logger.DebugKV(ctx, "No release descriptor file, using built-in version",
			"path", path)

		return release.Complete(nil), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return release.Descriptor{}, err
	}

	logger.DebugKV(ctx, "Loaded release descriptor",
		"path", path)

	return cfg.Descriptor(), nil
}
