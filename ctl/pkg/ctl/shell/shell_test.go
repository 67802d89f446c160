package shell

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfsemu/vfsemu/common/vfs"
)

func TestScenario(t *testing.T) {
	s := New()

	assert.Equal(t, "config.txt\nsystem.conf", s.Execute("ls /etc"))
	assert.Equal(t, "", s.Execute("cd home/user/documents"))
	assert.Equal(t, "/home/user/documents", s.Execute("pwd"))
	assert.Equal(t, "  3  3  41 /etc/config.txt", s.Execute("wc /etc/config.txt"))

	assert.Equal(t, "created directory '/tmp/x'", s.Execute("mkdir /tmp/x"))
	assert.Contains(t, strings.Split(s.Execute("ls /tmp"), "\n"), "x/")

	assert.Equal(t, "copied '/etc/config.txt' to '/tmp/c.txt'", s.Execute("cp /etc/config.txt /tmp/c.txt"))
	assert.Equal(t, "moved '/tmp/c.txt' to '/tmp/d.txt'", s.Execute("mv /tmp/c.txt /tmp/d.txt"))
	tmp := strings.Split(s.Execute("ls /tmp"), "\n")
	assert.Contains(t, tmp, "d.txt")
	assert.NotContains(t, tmp, "c.txt")
	assert.Equal(t, "  3  3  41 /etc/config.txt", s.Execute("wc /etc/config.txt"))
	assert.Equal(t, "  3  3  41 /tmp/d.txt", s.Execute("wc /tmp/d.txt"))
}

func TestExecute(t *testing.T) {
	s := New()

	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"   \t ", ""},
		{"rm /tmp", "command not found: rm"},
		{"RMDIR /tmp", "command not found: RMDIR"},
		{"LS /etc", "config.txt\nsystem.conf"},
		{"  ls   /etc  ", "config.txt\nsystem.conf"},
		{"cd", "Error: cd: invalid argument: expected exactly one path"},
		{"cd /nope", "Error: cd /nope: no such file or directory"},
		{"cd /etc/config.txt", "Error: cd /etc/config.txt: not a directory"},
		{"ls /etc/config.txt", "Error: ls /etc/config.txt: not a directory"},
		{"pwd extra", "Error: pwd: invalid argument: takes no arguments"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Execute(tt.line), "line %q", tt.line)
	}
}

func TestHelp(t *testing.T) {
	s := New()
	out := s.Execute("help")
	for _, name := range []string{"ls", "cd", "pwd", "wc", "find", "cp", "mv", "mkdir", "tree", "vfs-init", "exit"} {
		assert.Contains(t, out, "  "+name, "help is missing %s", name)
	}
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "cd "), "commands should be sorted")
}

func TestResetToDefault(t *testing.T) {
	s := New()
	s.Execute("mkdir /tmp/x")
	s.Execute("cd /tmp/x")

	assert.Equal(t, "VFS initialized with the default tree", s.Execute("vfs-init"))
	assert.Equal(t, "/", s.Pwd())
	assert.Equal(t, "", s.Execute("ls /tmp"))
}

const testTree = `<vfs>
  <directory name="data">
    <file name="a.txt">one two
three</file>
    <file name="blob.bin" encoding="base64">aGVsbG8=</file>
    <directory name="empty"/>
  </directory>
  <file name="top.txt"></file>
</vfs>`

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/trees/test.xml", []byte(testTree), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/trees/bad.xml", []byte("<root/>"), 0644))

	s := New()
	s.Execute("cd /etc")

	msg, err := s.Load(fsys, "/trees/test.xml")
	require.NoError(t, err)
	assert.Equal(t, "VFS loaded from /trees/test.xml", msg)
	assert.Equal(t, "/", s.Pwd())
	assert.Equal(t, "data/\ntop.txt", s.Execute("ls"))
	assert.Equal(t, "  2  3  13 /data/a.txt", s.Execute("wc /data/a.txt"))
	assert.Equal(t, "  1  1  5 /data/blob.bin", s.Execute("wc /data/blob.bin"))
	assert.Equal(t, "  0  0  0 top.txt", s.Execute("wc top.txt"))

	// A failed load keeps the current tree.
	_, err = s.Load(fsys, "/trees/bad.xml")
	assert.ErrorIs(t, err, vfs.ErrMalformedSource)
	_, err = s.Load(fsys, "/trees/missing.xml")
	assert.ErrorIs(t, err, vfs.ErrSourceNotFound)
	assert.Equal(t, "data/\ntop.txt", s.Execute("ls /"))
}

func TestTree(t *testing.T) {
	s := New(WithRawSizes(true))

	out, err := s.Tree([]string{"/etc"})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "/etc/")
	assert.Contains(t, lines[1], "config.txt (41)")
	assert.Contains(t, lines[2], "system.conf (41)")

	out, err = s.Tree([]string{"/etc/config.txt"})
	require.NoError(t, err)
	assert.Contains(t, out, "config.txt (41)")

	out, err = s.Tree([]string{"/"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), countNodes(t, s.Root()))

	_, err = s.Tree([]string{"/nope"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
}

func countNodes(t *testing.T, root vfs.Node) int {
	t.Helper()
	nodes := 0
	require.NoError(t, vfs.Walk(root, "/", func(string, vfs.Node) error {
		nodes++
		return nil
	}))
	return nodes
}
