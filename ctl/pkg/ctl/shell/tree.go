package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/vfsemu/vfsemu/common/vfs"
)

// Tree renders the directory at path (or the current directory) and everything below it as a
// connected list. Children keep their insertion order. Files show their size.
func (s *Shell) Tree(args []string) (string, error) {
	if len(args) > 1 {
		return "", usageError("tree", "expected at most one path")
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	n, abs, err := s.Resolve(path)
	if err != nil {
		return "", opError("tree", err)
	}

	w := list.NewWriter()
	w.SetStyle(list.StyleConnectedLight)
	switch n := n.(type) {
	case *vfs.File:
		w.AppendItem(s.treeItem(n))
	case *vfs.Dir:
		label := abs
		if abs != "/" {
			label += "/"
		}
		w.AppendItem(label)
		if n.Len() > 0 {
			w.Indent()
			s.appendTree(w, n)
		}
	default:
		return "", &fs.PathError{Op: "tree", Path: path, Err: vfs.ErrInvalidArgument}
	}
	return strings.TrimRight(w.Render(), "\n"), nil
}

func (s *Shell) appendTree(w list.Writer, dir *vfs.Dir) {
	for _, child := range dir.Children() {
		switch child := child.(type) {
		case *vfs.File:
			w.AppendItem(s.treeItem(child))
		case *vfs.Dir:
			w.AppendItem(displayName(child))
			if child.Len() > 0 {
				w.Indent()
				s.appendTree(w, child)
				w.UnIndent()
			}
		}
	}
}

func (s *Shell) treeItem(f *vfs.File) string {
	return fmt.Sprintf("%s (%s)", f.Name(), s.formatSize(f.Size()))
}

// formatSize prints a size in characters. Unless raw sizes were requested IEC prefixes are used.
func (s *Shell) formatSize(size int) string {
	if s.raw {
		return fmt.Sprintf("%d", size)
	}
	return unitconv.FormatPrefix(float64(size), unitconv.IEC, 1) + "B"
}
