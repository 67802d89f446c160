package vfs

import (
	"fmt"
	"unicode/utf8"
)

// Node is either a *Dir or a *File. The interface is sealed so callers can rely on a type switch
// over those two variants being exhaustive.
type Node interface {
	Name() string
	setName(name string)
}

// Dir is a directory. Children are keyed by name and also remember the order they were inserted
// in, which is the order Children() and Walk() use.
type Dir struct {
	name     string
	children map[string]Node
	order    []string
}

// File is a regular file. Its size is the number of characters in the content and is fixed when
// the file is created.
type File struct {
	name    string
	content string
	size    int
}

func NewDir(name string) *Dir {
	return &Dir{
		name:     name,
		children: make(map[string]Node),
	}
}

func NewFile(name string, content string) *File {
	return &File{
		name:    name,
		content: content,
		size:    utf8.RuneCountInString(content),
	}
}

func (d *Dir) Name() string         { return d.name }
func (d *Dir) setName(name string)  { d.name = name }
func (f *File) Name() string        { return f.name }
func (f *File) setName(name string) { f.name = name }
func (f *File) Content() string     { return f.content }
func (f *File) Size() int           { return f.size }

// Len returns the number of direct children.
func (d *Dir) Len() int {
	return len(d.order)
}

// Child returns the direct child with the given name.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Children returns the direct children in insertion order. The returned slice is a copy, the
// nodes are not.
func (d *Dir) Children() []Node {
	nodes := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		nodes = append(nodes, d.children[name])
	}
	return nodes
}

// Attach inserts n under its current name. It returns ErrExists if the name is already taken.
func (d *Dir) Attach(n Node) error {
	return d.AttachAs(n, n.Name())
}

// AttachAs inserts n under the provided name, renaming it. The node is only renamed if it was
// actually inserted, so a failed AttachAs leaves n untouched. The caller must have detached n
// from any previous parent.
func (d *Dir) AttachAs(n Node, name string) error {
	if name == "" {
		return fmt.Errorf("attaching to %q: %w: empty name", d.name, ErrInvalidArgument)
	}
	if _, ok := d.children[name]; ok {
		return fmt.Errorf("'%s': %w", name, ErrExists)
	}
	n.setName(name)
	d.children[name] = n
	d.order = append(d.order, name)
	return nil
}

// Index returns the position of the named child in the insertion order.
func (d *Dir) Index(name string) (int, bool) {
	for i, o := range d.order {
		if o == name {
			return i, true
		}
	}
	return -1, false
}

// AttachAt inserts n under its current name at position i of the insertion order. Positions
// outside the valid range are clamped, so AttachAt(n, d.Len()) behaves like Attach.
func (d *Dir) AttachAt(n Node, i int) error {
	if err := d.Attach(n); err != nil {
		return err
	}
	i = max(0, min(i, len(d.order)-1))
	last := d.order[len(d.order)-1]
	copy(d.order[i+1:], d.order[i:len(d.order)-1])
	d.order[i] = last
	return nil
}

// Detach removes the child with the given name and hands ownership of it to the caller.
func (d *Dir) Detach(name string) (Node, bool) {
	n, ok := d.children[name]
	if !ok {
		return nil, false
	}
	delete(d.children, name)
	for i, o := range d.order {
		if o == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return n, true
}

// put inserts or replaces a child. A replaced child keeps its original position.
func (d *Dir) put(n Node) {
	if _, ok := d.children[n.Name()]; !ok {
		d.order = append(d.order, n.Name())
	}
	d.children[n.Name()] = n
}

// Contains reports if n is somewhere below d. The check is by identity, not by name, and d itself
// is not considered to be below d.
func (d *Dir) Contains(n Node) bool {
	for _, child := range d.children {
		if child == n {
			return true
		}
		if sub, ok := child.(*Dir); ok && sub.Contains(n) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of n. Files are copied by value and directories are copied
// recursively, so the copy shares no nodes with the original.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *File:
		c := *n
		return &c
	case *Dir:
		c := NewDir(n.name)
		for _, name := range n.order {
			c.put(Clone(n.children[name]))
		}
		return c
	default:
		panic(fmt.Sprintf("vfs: unknown node type %T", n))
	}
}
