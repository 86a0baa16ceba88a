// Package stamp implements the version-stamp workflow: resolve the release
// descriptor (YAML file or built-in default), render the PEP 440 version
// string, and deliver it to standard output or a version file.
package stamp
