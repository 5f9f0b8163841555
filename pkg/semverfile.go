package semverfile

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/bcomnes/semverfile/pkg/version"
)

// DefaultVersion is used by Init when no version is given.
const DefaultVersion = "0.1.0"

// Store is the persisted version consumed by the bump and compare operations.
type Store interface {
	Load() (string, error)
	Save(serialized string) error
}

// Initializer creates a store that does not exist yet.
type Initializer interface {
	Init(serialized string) error
}

// VersionMeta holds metadata about a bump or init operation.
type VersionMeta struct {
	OldVersion   string   // The version before bumping, empty for init.
	NewVersion   string   // The resulting version.
	BumpType     string   // major, minor, patch, prerel, meta, force or init.
	UpdatedFiles []string // Version files written; empty for a pretend run.
	Pretend      bool     // True when nothing was persisted.
}

type pather interface {
	Path() (string, error)
}

// Option configures the operations in this package.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report bumps and warnings.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Current loads and parses the stored version.
func Current(st Store) (version.Version, error) {
	raw, err := st.Load()
	if err != nil {
		return version.Version{}, err
	}
	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, errors.Wrap(err, "stored version")
	}
	return v, nil
}

// bump computes the new version for in without touching the store.
func bump(st Store, in version.Instruction) (VersionMeta, error) {
	var meta VersionMeta

	current, err := Current(st)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = current.String()

	next, err := version.Bump(current, in)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next.String()
	meta.BumpType = in.Kind.String()
	return meta, nil
}

// Run applies in to the stored version and saves the result. Nothing is
// written unless the bump succeeds.
func Run(st Store, in version.Instruction, opts ...Option) (VersionMeta, error) {
	o := buildOptions(opts)

	meta, err := bump(st, in)
	if err != nil {
		return meta, err
	}
	if err := st.Save(meta.NewVersion); err != nil {
		return meta, err
	}
	if p, ok := st.(pather); ok {
		if path, err := p.Path(); err == nil {
			meta.UpdatedFiles = []string{path}
		}
	}

	o.logger.Info("version bumped",
		zap.String("old", meta.OldVersion),
		zap.String("new", meta.NewVersion),
		zap.String("type", meta.BumpType),
		zap.Strings("files", meta.UpdatedFiles))
	warnNonCanonical(o.logger, meta.NewVersion)
	return meta, nil
}

// DryRun computes what Run would produce without saving anything.
func DryRun(st Store, in version.Instruction, opts ...Option) (VersionMeta, error) {
	o := buildOptions(opts)

	meta, err := bump(st, in)
	meta.Pretend = true
	if err != nil {
		return meta, err
	}

	o.logger.Info("pretend bump",
		zap.String("old", meta.OldVersion),
		zap.String("new", meta.NewVersion),
		zap.String("type", meta.BumpType))
	warnNonCanonical(o.logger, meta.NewVersion)
	return meta, nil
}

// Init creates the store holding v, or DefaultVersion when v is empty. v is
// validated before anything is written.
func Init(st Initializer, v string, opts ...Option) (VersionMeta, error) {
	o := buildOptions(opts)
	meta := VersionMeta{BumpType: "init"}

	if v == "" {
		v = DefaultVersion
	}
	parsed, err := version.Parse(v)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = parsed.String()

	if err := st.Init(meta.NewVersion); err != nil {
		return meta, err
	}
	if p, ok := st.(pather); ok {
		if path, err := p.Path(); err == nil {
			meta.UpdatedFiles = []string{path}
		}
	}

	o.logger.Info("version file created", zap.String("version", meta.NewVersion), zap.Strings("files", meta.UpdatedFiles))
	warnNonCanonical(o.logger, meta.NewVersion)
	return meta, nil
}

// Compare orders v against old, or against the stored version when old is
// empty, and returns -1, 0 or 1. Both arguments are parsed before the store
// is read.
func Compare(st Store, v, old string) (int, error) {
	a, err := version.Parse(v)
	if err != nil {
		return 0, err
	}

	var b version.Version
	if old != "" {
		if b, err = version.Parse(old); err != nil {
			return 0, err
		}
	} else {
		if b, err = Current(st); err != nil {
			return 0, err
		}
	}
	return version.Compare(a, b), nil
}

// Validate parses v and reports grammar violations. A grammar-valid version
// that is not canonical semantic versioning is logged as a warning.
func Validate(v string, opts ...Option) (version.Version, error) {
	o := buildOptions(opts)
	parsed, err := version.Parse(v)
	if err != nil {
		return version.Version{}, err
	}
	warnNonCanonical(o.logger, v)
	return parsed, nil
}

func warnNonCanonical(logger *zap.Logger, v string) {
	parsed, err := version.Parse(v)
	if err != nil || parsed.IsCanonical() {
		return
	}
	logger.Warn("version is not canonical semantic versioning; Go module tooling will reject it as a tag",
		zap.String("version", v))
}
