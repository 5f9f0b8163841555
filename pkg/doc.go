// Package semverfile provides a library for managing a project's semantic
// version stored in a one-line text file.
//
// It provides functionalities for:
//   - Locating the version file by walking up from a start directory (see the store package).
//   - Parsing and validating versions of the form MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]
//     (see the version package).
//   - Bumping the stored version with exactly one instruction (major, minor, patch,
//     prerel, meta or a forced version), either persisting the result (Run) or only
//     reporting it (DryRun).
//   - Creating the version file (Init) and comparing versions (Compare).
//
// This library backs the semver command-line tool and can be used programmatically
// by other Go programs.
//
// Usage Example:
//
//	import (
//	    "log"
//
//	    semverfile "github.com/bcomnes/semverfile/pkg"
//	    "github.com/bcomnes/semverfile/pkg/store"
//	    "github.com/bcomnes/semverfile/pkg/version"
//	)
//
//	func main() {
//	    st := store.New(".")
//	    meta, err := semverfile.Run(st, version.BumpPatch())
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package semverfile
