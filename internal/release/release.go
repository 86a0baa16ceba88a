package release

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a release as a pre-release stage or a final release.
type Kind string

// The four release kinds a descriptor may carry.
const (
	KindAlpha   Kind = "alpha"
	KindBeta    Kind = "beta"
	KindRC      Kind = "rc"
	KindRelease Kind = "release"
)

// Descriptor is the five-part version of the project:
// numeric components plus the release stage and its serial.
type Descriptor struct {
	// Major is the first numeric component.
	Major int
	// Minor is the second numeric component.
	Minor int
	// Micro is the third numeric component, omitted from output when zero.
	Micro int
	// Kind is the release stage.
	Kind Kind
	// Serial numbers pre-releases within a stage (a1, a2, b1, ...).
	Serial int
}

// Current is the version of this project.
// A serial-zero alpha marks a pre-alpha tree and gets a .dev suffix
// when the git changeset is resolvable.
var Current = Descriptor{Major: 1, Minor: 1, Micro: 0, Kind: KindRelease, Serial: 0}

// kindSuffixes maps pre-release kinds to their PEP 440 short codes.
var kindSuffixes = map[Kind]string{
	KindAlpha: "a",
	KindBeta:  "b",
	KindRC:    "rc",
}

// ParseKind converts a string to a Kind.
// The second return value reports whether the input named a known kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindAlpha:
		return KindAlpha, true
	case KindBeta:
		return KindBeta, true
	case KindRC:
		return KindRC, true
	case KindRelease:
		return KindRelease, true
	default:
		return "", false
	}
}

// Valid reports whether the kind is exactly one of the four stage literals.
// Unlike ParseKind, no normalization is applied: a descriptor carrying
// "BETA" or " beta" is malformed.
func (k Kind) Valid() bool {
	switch k {
	case KindAlpha, KindBeta, KindRC, KindRelease:
		return true
	default:
		return false
	}
}

// Complete resolves an optional descriptor: nil selects Current,
// anything else is validated. An unknown kind is a programming error
// on the caller's side and panics.
func Complete(d *Descriptor) Descriptor {
	if d == nil {
		return Current
	}

	if !d.Kind.Valid() {
		panic(fmt.Sprintf("release: invalid kind %q", d.Kind))
	}

	return *d
}

// MainVersion renders the numeric part of the version:
// X.Y, or X.Y.Z when the micro component is non-zero.
func MainVersion(d *Descriptor) string {
	version := Complete(d)

	parts := []string{
		strconv.Itoa(version.Major),
		strconv.Itoa(version.Minor),
	}
	if version.Micro != 0 {
		parts = append(parts, strconv.Itoa(version.Micro))
	}

	return strings.Join(parts, ".")
}

// Version renders the full PEP 440 version string:
// the main version plus .devN for a pre-alpha tree with a resolvable
// changeset, the short-code suffix for other pre-releases, or nothing
// for a final release. A pre-alpha tree without a resolvable changeset
// keeps the bare main version.
func Version(d *Descriptor) string {
	version := Complete(d)
	main := MainVersion(&version)

	var sub string

	switch {
	case version.Kind == KindAlpha && version.Serial == 0:
		if changeset := GitChangeset(); changeset != "" {
			sub = ".dev" + changeset
		}
	case version.Kind != KindRelease:
		sub = kindSuffixes[version.Kind] + strconv.Itoa(version.Serial)
	}

	return main + sub
}
