package shell

import (
	"io/fs"
	"slices"
	"strings"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// Ls lists the entries of the directory at path, or the current directory when no path is given.
// Directories are suffixed with a slash and the result is sorted by name.
func (s *Shell) Ls(args []string) (string, error) {
	if len(args) > 1 {
		return "", usageError("ls", "expected at most one path")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	n, _, err := s.Resolve(path)
	if err != nil {
		return "", opError("ls", err)
	}
	dir, ok := n.(*vfs.Dir)
	if !ok {
		return "", &fs.PathError{Op: "ls", Path: path, Err: vfs.ErrNotDirectory}
	}
	names := make([]string, 0, dir.Len())
	for _, child := range dir.Children() {
		names = append(names, displayName(child))
	}
	slices.Sort(names)
	return strings.Join(names, "\n"), nil
}

// displayName returns the name of n with a trailing slash for directories.
func displayName(n vfs.Node) string {
	if _, ok := n.(*vfs.Dir); ok {
		return n.Name() + "/"
	}
	return n.Name()
}
