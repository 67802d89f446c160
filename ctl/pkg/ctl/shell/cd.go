package shell

import (
	"io/fs"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// Cd changes the current directory. The new working path is stored in its normalized absolute
// form so later "..", "." and empty segments never accumulate.
func (s *Shell) Cd(args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError("cd", "expected exactly one path")
	}
	path := args[0]
	n, names, err := s.resolve(path)
	if err != nil {
		return "", &fs.PathError{Op: "cd", Path: path, Err: err}
	}
	if _, ok := n.(*vfs.Dir); !ok {
		return "", &fs.PathError{Op: "cd", Path: path, Err: vfs.ErrNotDirectory}
	}
	s.cwd = names
	return "", nil
}

// Pwd returns the current working path. The root is returned as "/".
func (s *Shell) Pwd() string {
	_, names := s.cwdStack()
	return formatPath(names)
}
