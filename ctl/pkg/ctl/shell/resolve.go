package shell

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/vfsemu/vfsemu/common/vfs"
	"go.uber.org/zap"
)

// cwdStack returns the directories from the root down to the current directory together with
// their names. If the current working path no longer leads to a directory the shell falls back to
// the root.
func (s *Shell) cwdStack() ([]*vfs.Dir, []string) {
	stack := []*vfs.Dir{s.root}
	for _, name := range s.cwd {
		child, _ := stack[len(stack)-1].Child(name)
		dir, ok := child.(*vfs.Dir)
		if !ok {
			s.log.Warn("current directory no longer exists, falling back to the root", zap.String("cwd", formatPath(s.cwd)))
			s.cwd = nil
			return []*vfs.Dir{s.root}, nil
		}
		stack = append(stack, dir)
	}
	return stack, slices.Clone(s.cwd)
}

// resolve walks path and returns the node it designates plus its normalized absolute path as a
// list of names.
func (s *Shell) resolve(path string) (vfs.Node, []string, error) {
	var stack []*vfs.Dir
	var names []string
	if strings.HasPrefix(path, "/") {
		stack = []*vfs.Dir{s.root}
	} else {
		stack, names = s.cwdStack()
	}

	segments := splitPath(path)
	for i, segment := range segments {
		switch segment {
		case ".":
			continue
		case "..":
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
				names = names[:len(names)-1]
			}
			continue
		}
		child, ok := stack[len(stack)-1].Child(segment)
		if !ok {
			return nil, nil, vfs.ErrNotFound
		}
		switch child := child.(type) {
		case *vfs.Dir:
			stack = append(stack, child)
			names = append(names, segment)
		case *vfs.File:
			// Only the final segment may name a file.
			if i != len(segments)-1 {
				return nil, nil, vfs.ErrNotFound
			}
			// A trailing slash asks for a directory.
			if strings.HasSuffix(path, "/") {
				return nil, nil, vfs.ErrNotDirectory
			}
			return child, append(names, segment), nil
		}
	}
	return stack[len(stack)-1], names, nil
}

// Resolve returns the node path designates and its normalized absolute path. Relative paths are
// resolved from the current directory. An error wrapping vfs.ErrNotFound is returned if any
// segment does not exist or a file is used as an intermediate segment, and one wrapping
// vfs.ErrNotDirectory if the path ends in a slash but names a file.
func (s *Shell) Resolve(path string) (vfs.Node, string, error) {
	n, names, err := s.resolve(path)
	if err != nil {
		return nil, "", &fs.PathError{Op: "resolve", Path: path, Err: err}
	}
	return n, formatPath(names), nil
}

// ResolveParent splits path into the directory that contains (or would contain) the final segment
// and the name of that segment. The name is empty when the path designates a directory without
// naming an entry in it: the root, the current directory, a trailing slash or a final "." or
// "..". An error wrapping vfs.ErrInvalidPath is returned if the containing directory does not
// exist or is not a directory.
func (s *Shell) ResolveParent(path string) (*vfs.Dir, string, error) {
	dirPath, name := path, ""
	if last := path[strings.LastIndex(path, "/")+1:]; last != "" && last != "." && last != ".." {
		dirPath, name = path[:len(path)-len(last)], last
	}
	n, _, err := s.resolve(dirPath)
	if err != nil {
		return nil, "", &fs.PathError{Op: "resolve", Path: path, Err: vfs.ErrInvalidPath}
	}
	dir, ok := n.(*vfs.Dir)
	if !ok {
		return nil, "", &fs.PathError{Op: "resolve", Path: path, Err: fmt.Errorf("%w: '%s' is not a directory", vfs.ErrInvalidPath, dirPath)}
	}
	return dir, name, nil
}

// splitPath returns the non-empty segments of path.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func formatPath(names []string) string {
	return "/" + strings.Join(names, "/")
}
