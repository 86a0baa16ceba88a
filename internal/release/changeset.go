package release

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// changesetTimestampLayout is the fixed-width UTC layout of a changeset
// identifier: YYYYMMDDHHMMSS.
const changesetTimestampLayout = "20060102150405"

// changesetCache memoizes a changeset resolution so the git subprocess
// runs at most once per process, even under concurrent first calls.
type changesetCache struct {
	once  sync.Once
	value string
}

// get returns the cached value, running resolve on the first call only.
// An empty result is cached the same as a successful one.
func (c *changesetCache) get(resolve func() string) string {
	c.once.Do(func() {
		c.value = resolve()
	})

	return c.value
}

// gitChangeset is the process-wide cache behind GitChangeset.
var gitChangeset changesetCache

// GitChangeset returns the UTC commit time of the repository HEAD as a
// 14-digit YYYYMMDDHHMMSS string, or "" when it cannot be determined
// (no source location, not a repository, no commits). The value is not
// guaranteed unique, but collisions are unlikely enough for development
// version numbers. The resolution runs at most once per process.
func GitChangeset() string {
	return gitChangeset.get(resolveChangeset)
}

// resolveChangeset locates the repository root from this file's compiled-in
// source path and asks git for the HEAD commit time. Any failure along the
// way yields "".
func resolveChangeset() string {
	root, ok := repositoryRoot()
	if !ok {
		return ""
	}

	cmd := exec.Command("git", "log", "--pretty=format:%ct", "--quiet", "-1", "HEAD")
	cmd.Dir = root

	// A failing command is indistinguishable from empty output here;
	// both route to the unavailable outcome.
	out, _ := cmd.Output()

	return formatChangeset(string(out))
}

// repositoryRoot resolves the repository root relative to this source file.
// It reports false when the build carries no usable source location
// (trimmed paths, assembled binaries on another machine).
func repositoryRoot() (string, bool) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", false
	}

	// internal/release/changeset.go -> repository root is two levels
	// above this file's directory.
	root := filepath.Dir(filepath.Dir(filepath.Dir(file)))

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return "", false
	}

	return root, true
}

// formatChangeset parses git's raw %ct output (a Unix timestamp in
// seconds) and renders it as a 14-digit UTC identifier. Unparsable
// input yields "".
func formatChangeset(raw string) string {
	seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return ""
	}

	return time.Unix(seconds, 0).UTC().Format(changesetTimestampLayout)
}
