package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// Mkdir creates an empty directory. The parent must already exist, parents are never created.
func (s *Shell) Mkdir(args []string) (string, error) {
	if len(args) != 1 {
		return "", usageError("mkdir", "specify the directory to create")
	}
	path := args[0]
	// "x/" names x just like "x" does.
	parent, name, err := s.ResolveParent(strings.TrimRight(path, "/"))
	if err != nil {
		return "", opError("mkdir", err)
	}
	if name == "" {
		return "", usageError("mkdir", "'%s' does not name a directory to create", path)
	}
	if err := parent.Attach(vfs.NewDir(name)); err != nil {
		return "", &fs.PathError{Op: "mkdir", Path: path, Err: vfs.ErrExists}
	}
	return fmt.Sprintf("created directory '%s'", path), nil
}
