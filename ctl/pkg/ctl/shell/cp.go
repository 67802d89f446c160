package shell

import (
	"fmt"
	"io/fs"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// Cp copies the file or directory at src to dst. Directories are copied recursively and the copy
// shares no nodes with the source. A destination ending in a slash copies into that directory under
// the source's name. Existing entries are never overwritten.
func (s *Shell) Cp(args []string) (string, error) {
	if len(args) != 2 {
		return "", usageError("cp", "specify the source and the destination")
	}
	src, dst := args[0], args[1]

	n, _, err := s.Resolve(src)
	if err != nil {
		return "", opError("cp", err)
	}
	parent, name, err := s.destination(dst, n.Name())
	if err != nil {
		return "", opError("cp", err)
	}
	if name == "" {
		return "", usageError("cp", "cannot copy the root directory without a destination name")
	}
	if _, exists := parent.Child(name); exists {
		return "", &fs.PathError{Op: "cp", Path: dst, Err: vfs.ErrExists}
	}
	if err := parent.AttachAs(vfs.Clone(n), name); err != nil {
		return "", opError("cp", err)
	}
	return fmt.Sprintf("copied '%s' to '%s'", src, dst), nil
}

// destination resolves the parent directory and final name of a cp or mv destination. A
// destination that does not name an entry, like "/tmp/" or "..", uses fallback as the name.
func (s *Shell) destination(dst string, fallback string) (*vfs.Dir, string, error) {
	parent, name, err := s.ResolveParent(dst)
	if err != nil {
		return nil, "", err
	}
	if name == "" {
		name = fallback
	}
	return parent, name, nil
}
