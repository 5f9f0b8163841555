// Package store persists a project's version as a one-line text file and
// locates that file by walking up from a start directory.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultName is the file name searched for when none is configured.
const DefaultName = ".semver"

var (
	// ErrNotFound is returned when no version file exists in the start
	// directory or any of its parents.
	ErrNotFound = errors.New("no version file found")
	// ErrAlreadyExists is returned by Init when a version file is already
	// reachable from the start directory.
	ErrAlreadyExists = errors.New("version file already exists")
)

// Find searches startDir and each of its parents, up to the filesystem root,
// for a regular file called name. It returns the absolute path of the first
// match or ErrNotFound.
func Find(startDir, name string) (string, error) {
	d, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", startDir)
	}
	for {
		candidate := filepath.Join(d, name)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
		if err != nil && !os.IsNotExist(err) && !os.IsPermission(err) {
			return "", errors.Wrapf(err, "checking %s", candidate)
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", ErrNotFound
}

// Option configures a Store.
type Option func(*Store)

// WithName sets the version file name (default DefaultName).
func WithName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}

// WithOutput sets where saved values are echoed (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store is a handle on the version file reachable from one start directory.
// It holds no process-wide state; two stores with different directories are
// independent.
type Store struct {
	dir    string
	name   string
	out    io.Writer
	logger *zap.Logger

	path string
}

// New returns a Store searching upward from dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		name:   DefaultName,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the version file name.
func (s *Store) Name() string { return s.name }

// Path returns the location of the version file, searching for it on first
// use.
func (s *Store) Path() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	p, err := Find(s.dir, s.name)
	if err != nil {
		return "", err
	}
	s.logger.Debug("located version file", zap.String("path", p))
	s.path = p
	return p, nil
}

// Load returns the first line of the version file without its line ending.
func (s *Store) Load() (string, error) {
	p, err := s.Path()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", p)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}

// Save overwrites the version file with serialized and echoes the value to
// the configured output.
func (s *Store) Save(serialized string) error {
	p, err := s.Path()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, []byte(serialized+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", p)
	}
	s.logger.Debug("saved version", zap.String("path", p), zap.String("version", serialized))
	return s.echo(serialized)
}

// Init creates the version file in the start directory holding serialized.
// It fails with ErrAlreadyExists, leaving the file untouched, when a version
// file can already be found from the start directory.
func (s *Store) Init(serialized string) error {
	if existing, err := Find(s.dir, s.name); err == nil {
		return errors.Wrapf(ErrAlreadyExists, "%s", existing)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", s.dir)
	}
	p := filepath.Join(dir, s.name)
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(ErrAlreadyExists, "%s", p)
		}
		return errors.Wrapf(err, "creating %s", p)
	}
	if _, err := fmt.Fprintln(f, serialized); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", p)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", p)
	}
	s.path = p
	s.logger.Debug("created version file", zap.String("path", p), zap.String("version", serialized))
	return s.echo(serialized)
}

func (s *Store) echo(serialized string) error {
	if _, err := fmt.Fprintln(s.out, serialized); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}
