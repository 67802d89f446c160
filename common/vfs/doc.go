// Vfs contains the in-memory tree that backs the virtual filesystem emulator: the node model, the
// walker used by search style commands, the XML deserializer and the built-in demonstration tree.
//
// Nodes are exclusively owned by their parent directory. There are no parent pointers, so a node
// can only be reached from the root by walking down and callers that need ".." keep their own
// stack of directories. Moving a node is always detach then attach:
//
//	node, ok := src.Detach("report.txt")
//	if !ok {
//	    return vfs.ErrNotFound
//	}
//	if err := dst.AttachAs(node, "renamed.txt"); err != nil {
//	    src.Attach(node)
//	    return err
//	}
//
// Nothing in this package is safe for concurrent use.
package vfs
