// Package shell implements the command layer of the emulator. A Shell owns one in-memory tree and
// the current working path, resolves path arguments against them and executes the ls, cd, pwd,
// wc, find, cp, mv and mkdir commands (plus a few supporting ones) on the tree.
//
// A Shell is not safe for concurrent use. Commands are expected to be executed one at a time.
package shell

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/vfsemu/vfsemu/common/vfs"
	"go.uber.org/zap"
)

type Shell struct {
	root *vfs.Dir
	// cwd is the absolute current working path as a list of names starting below the root. The
	// directories are looked up again from the root each time they are needed so a cwd that was
	// moved away underneath the shell is noticed.
	cwd []string
	log *zap.Logger
	raw bool
}

type Option func(*Shell)

// WithLogger sets the logger used by the shell. By default nothing is logged.
func WithLogger(log *zap.Logger) Option {
	return func(s *Shell) {
		s.log = log
	}
}

// WithRawSizes makes commands print sizes as plain character counts instead of using IEC prefixes.
func WithRawSizes(raw bool) Option {
	return func(s *Shell) {
		s.raw = raw
	}
}

// WithRoot starts the shell on the provided tree instead of the default tree.
func WithRoot(root *vfs.Dir) Option {
	return func(s *Shell) {
		s.root = root
	}
}

// New returns a shell positioned at the root of the default demonstration tree unless WithRoot
// is used.
func New(opts ...Option) *Shell {
	s := &Shell{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.root == nil {
		s.root = vfs.DefaultTree()
	}
	s.log = s.log.With(zap.String("component", "shell"))
	return s
}

// Root returns the root directory of the tree the shell currently operates on.
func (s *Shell) Root() *vfs.Dir {
	return s.root
}

// Load replaces the tree with the one serialized at path and moves to the root. If the tree
// cannot be loaded the current tree is left untouched and an error is returned.
func (s *Shell) Load(fsys afero.Fs, path string) (string, error) {
	root, err := vfs.Load(fsys, path)
	if err != nil {
		s.log.Info("unable to load tree", zap.String("path", path), zap.Error(err))
		return "", err
	}
	s.root = root
	s.cwd = nil
	s.log.Info("loaded tree", zap.String("path", path), zap.Int("entries", root.Len()))
	return fmt.Sprintf("VFS loaded from %s", path), nil
}

// ResetToDefault replaces the tree with the default demonstration tree and moves to the root.
func (s *Shell) ResetToDefault() string {
	s.root = vfs.DefaultTree()
	s.cwd = nil
	s.log.Info("installed default tree")
	return "VFS initialized with the default tree"
}
