package vfs

import (
	"io/fs"
	"strings"
)

// WalkFunc is called for every node visited by Walk. The path is built by appending child names
// to the path string Walk was started with, so a walk started at ".." reports "../etc" and so on.
// Returning fs.SkipDir from a directory skips its children and fs.SkipAll stops the walk without
// an error. Any other error stops the walk and is returned by Walk.
type WalkFunc func(path string, n Node) error

// Walk visits root and every node below it exactly once, depth first, with the children of each
// directory in insertion order.
func Walk(root Node, path string, fn WalkFunc) error {
	err := walk(root, path, fn)
	if err == fs.SkipDir || err == fs.SkipAll {
		return nil
	}
	return err
}

func walk(n Node, path string, fn WalkFunc) error {
	err := fn(path, n)
	dir, isDir := n.(*Dir)
	if err != nil || !isDir {
		if err == fs.SkipDir && isDir {
			err = nil
		}
		return err
	}
	for _, child := range dir.Children() {
		if err := walk(child, JoinPath(path, child.Name()), fn); err != nil {
			if err == fs.SkipDir {
				// SkipDir returned by a file skips the remaining siblings.
				break
			}
			return err
		}
	}
	return nil
}

// JoinPath appends name to base without doubling the separator, so the root "/" joins to "/etc"
// rather than "//etc".
func JoinPath(base string, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}
