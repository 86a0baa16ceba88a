package stamp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/version-stamp/internal/config"
	"github.com/oshokin/version-stamp/internal/release"
)

// TestRunWithDescriptorFile checks the version rendered from a YAML descriptor.
func TestRunWithDescriptorFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")

	cfg := &config.Config{Major: 2, Minor: 0, Micro: 0, Kind: "beta", Serial: 3}
	require.NoError(t, config.Save(path, cfg))

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: path,
		Out:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "2.0b3\n", out.String())
}

// TestRunMainOnly checks that suffixes are dropped when only the numeric
// part is requested.
func TestRunMainOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")

	cfg := &config.Config{Major: 4, Minor: 2, Micro: 1, Kind: "rc", Serial: 2}
	require.NoError(t, config.Save(path, cfg))

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: path,
		MainOnly:   true,
		Out:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, "4.2.1\n", out.String())
}

// TestRunFallsBackToBuiltIn checks the built-in descriptor is used when the
// descriptor file is absent.
func TestRunFallsBackToBuiltIn(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"),
		Out:        &out,
	})
	require.NoError(t, err)
	require.Equal(t, release.Version(nil)+"\n", out.String())
}

// TestRunWritesVersionFile checks the version file contents and trailing newline.
func TestRunWritesVersionFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descriptorPath := filepath.Join(dir, "release.yaml")
	versionPath := filepath.Join(dir, "VERSION")

	cfg := &config.Config{Major: 2, Minor: 1, Micro: 0, Kind: "release"}
	require.NoError(t, config.Save(descriptorPath, cfg))

	err := Run(context.Background(), &Options{
		ConfigPath: descriptorPath,
		OutputPath: versionPath,
	})
	require.NoError(t, err)

	contents, err := os.ReadFile(versionPath)
	require.NoError(t, err)
	require.Equal(t, "2.1\n", string(contents))
}

// TestRunReportsUnreadableDescriptor checks that a descriptor file that
// exists but cannot be reached is reported instead of being silently
// replaced by the built-in version.
func TestRunReportsUnreadableDescriptor(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o700))

	path := filepath.Join(locked, "release.yaml")
	cfg := &config.Config{Major: 2, Minor: 0, Kind: "beta", Serial: 3}
	require.NoError(t, config.Save(path, cfg))

	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o700)
	})

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: path,
		Out:        &out,
	})
	require.ErrorContains(t, err, "stat release descriptor")
	require.Empty(t, out.String())
}

// TestRunRejectsMalformedDescriptor checks load errors surface to the caller.
func TestRunRejectsMalformedDescriptor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")
	require.NoError(t, os.WriteFile(path, []byte("major: 1\nkind: bogus\n"), 0o600))

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: path,
		Out:        &out,
	})
	require.ErrorContains(t, err, "stamp version")
	require.Empty(t, out.String())
}
