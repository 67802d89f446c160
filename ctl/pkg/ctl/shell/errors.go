package shell

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// opError attributes err to the command op. Path errors keep their path and underlying error so
// errors.Is still works against the vfs sentinels.
func opError(op string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &fs.PathError{Op: op, Path: pathErr.Path, Err: pathErr.Err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func usageError(op string, format string, a ...any) error {
	return fmt.Errorf("%s: %w: %s", op, vfs.ErrInvalidArgument, fmt.Sprintf(format, a...))
}
