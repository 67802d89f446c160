package vfs

// DefaultTree returns a new copy of the built-in demonstration hierarchy. It is used when no
// serialized source is configured and by the vfs-init command.
func DefaultTree() *Dir {
	root := NewDir("")

	home := addDir(root, "home")
	user := addDir(home, "user")
	documents := addDir(user, "documents")
	documents.put(NewFile("readme.txt", "Welcome to the VFS!\nThis is a test file.\nThird line."))
	documents.put(NewFile("notes.txt", "User notes\nSecond line of notes"))
	downloads := addDir(user, "downloads")
	downloads.put(NewFile("archive.zip", "binary data here"))

	etc := addDir(root, "etc")
	etc.put(NewFile("config.txt", "version=1.0.0\nlanguage=en\nmode=production"))
	etc.put(NewFile("system.conf", "# System configuration\nhostname=localhost"))

	log := addDir(addDir(root, "var"), "log")
	log.put(NewFile("app.log", "INFO: Application started\nERROR: Connection failed\nWARN: Retrying..."))

	bin := addDir(root, "bin")
	bin.put(NewFile("script.sh", "#!/bin/bash\necho \"Hello World\""))

	addDir(root, "tmp")
	return root
}

func addDir(parent *Dir, name string) *Dir {
	d := NewDir(name)
	parent.put(d)
	return d
}
