// Package release computes PEP 440 version strings for the project.
//
// The version is described by a five-part Descriptor (major, minor, micro,
// release kind, serial). Version renders the full identifier: a serial-zero
// alpha is treated as a pre-alpha tree and stamped with a .dev suffix built
// from the latest git changeset timestamp; other pre-releases get their
// short-code suffix (a1, b2, rc1); final releases get none.
//
// Variables Commit and BuildTime are injected at build time via Go ldflags
// and default to sensible values for local builds.
package release
