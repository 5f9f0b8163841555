// Package main implements the semver CLI tool.
//
// The semver tool manages a project's semantic version stored in a one-line
// text file (default ".semver"). The file is located by walking up from the
// working directory, so the tool works from any subdirectory of the project.
// Versions have the form MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA].
//
// Command Usage:
//
//	semver [flags]
//	semver init [version]
//	semver bump (major|minor|patch|prerel <value>|meta <value>|--force <version>) [--pretend]
//	semver compare <version> [<old>]
//	semver validate <version>
//
// Flags:
//
//	--config:      Path to a YAML config file (default ".semver.yaml" in the start directory).
//	--file:        Name of the version file to look for (default ".semver").
//	-C, --dir:     Directory to start looking for the version file from (default ".").
//	--log-level:   One of debug, info, warn, error (default "warn").
//	--pretend:     With bump, print the new version without writing it.
//	-v, --version: Displays the version of the semver CLI tool and exits.
//	-h, --help:    Displays usage and exits.
//
// Examples:
//
//	# Create .semver holding 0.1.0
//	semver init
//
//	# Print the current version
//	semver
//
//	# Bump the minor version (e.g. 1.2.3 → 1.3.0)
//	semver bump minor
//
//	# Set a prerelease, dropping any build metadata (e.g. 1.3.0 → 1.3.0-rc1)
//	semver bump prerel rc1
//
//	# Attach build metadata (e.g. 1.3.0-rc1 → 1.3.0-rc1+sha-5114f85)
//	semver bump meta sha-5114f85
//
//	# Show what a major bump would produce without writing it
//	semver bump major --pretend
//
//	# Replace the stored version outright
//	semver bump --force 2.0.0
//
//	# Compare against the stored version, or two versions with each other
//	semver compare 2.1.0
//	semver compare 1.0.0-rc1 1.0.0
//
// Exit status is 0 on success, 1 when an operation fails and 2 for a malformed
// command line.
//
// For the library API see the documentation of the "pkg" package or visit
// [PkgGoDev](https://pkg.go.dev/github.com/bcomnes/semverfile).
package main
