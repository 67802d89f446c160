package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/vfsemu/vfsemu/common/vfs"
	"go.uber.org/zap"
)

// Mv moves or renames the entry at src to dst. Directories are moved as a whole, nothing is
// copied. Moving a directory into itself or one of its subdirectories is refused. The source is
// put back in place if it cannot be attached at the destination.
func (s *Shell) Mv(args []string) (string, error) {
	if len(args) != 2 {
		return "", usageError("mv", "specify the source and the destination")
	}
	src, dst := args[0], args[1]

	srcParent, srcName, err := s.ResolveParent(strings.TrimRight(src, "/"))
	if err != nil {
		return "", &fs.PathError{Op: "mv", Path: src, Err: vfs.ErrNotFound}
	}
	if srcName == "" {
		return "", usageError("mv", "cannot move '%s'", src)
	}
	n, ok := srcParent.Child(srcName)
	if !ok {
		return "", &fs.PathError{Op: "mv", Path: src, Err: vfs.ErrNotFound}
	}

	dstParent, dstName, err := s.destination(dst, srcName)
	if err != nil {
		return "", opError("mv", err)
	}
	if dir, ok := n.(*vfs.Dir); ok && (dstParent == dir || dir.Contains(dstParent)) {
		return "", &fs.PathError{Op: "mv", Path: dst, Err: vfs.ErrMoveIntoSelf}
	}
	if _, exists := dstParent.Child(dstName); exists {
		return "", &fs.PathError{Op: "mv", Path: dst, Err: vfs.ErrExists}
	}

	if err := s.transfer(srcParent, srcName, dstParent, dstName); err != nil {
		return "", opError("mv", err)
	}
	return fmt.Sprintf("moved '%s' to '%s'", src, dst), nil
}

// transfer detaches srcName from srcParent and attaches it to dstParent as dstName. If the attach
// fails the node is put back under its old name at its old position, so the tree is unchanged.
func (s *Shell) transfer(srcParent *vfs.Dir, srcName string, dstParent *vfs.Dir, dstName string) error {
	pos, _ := srcParent.Index(srcName)
	n, ok := srcParent.Detach(srcName)
	if !ok {
		return &fs.PathError{Op: "mv", Path: srcName, Err: vfs.ErrNotFound}
	}
	if err := dstParent.AttachAs(n, dstName); err != nil {
		if restoreErr := srcParent.AttachAt(n, pos); restoreErr != nil {
			s.log.Error("unable to restore node after a failed move", zap.String("name", srcName), zap.Error(restoreErr))
		}
		return err
	}
	return nil
}
