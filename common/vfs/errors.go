package vfs

import "errors"

var (
	ErrNotFound        = errors.New("no such file or directory")
	ErrNotDirectory    = errors.New("not a directory")
	ErrNotFile         = errors.New("not a file")
	ErrExists          = errors.New("already exists")
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMoveIntoSelf    = errors.New("cannot move directory into itself or a subdirectory")
	ErrSourceNotFound  = errors.New("serialized source not found")
	ErrMalformedSource = errors.New("malformed serialized source")
)
