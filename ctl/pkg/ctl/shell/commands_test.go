package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfsemu/vfsemu/common/vfs"
)

func TestLs(t *testing.T) {
	s := New()

	out, err := s.Ls(nil)
	require.NoError(t, err)
	assert.Equal(t, "bin/\netc/\nhome/\ntmp/\nvar/", out)

	out, err = s.Ls([]string{"/home/user/documents"})
	require.NoError(t, err)
	assert.Equal(t, "notes.txt\nreadme.txt", out)

	out, err = s.Ls([]string{"/tmp"})
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = s.Ls([]string{"/etc/config.txt"})
	assert.ErrorIs(t, err, vfs.ErrNotDirectory)
	_, err = s.Ls([]string{"/nope"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
	_, err = s.Ls([]string{"/etc", "/tmp"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
}

func TestCount(t *testing.T) {
	tests := []struct {
		content string
		want    counts
	}{
		{"", counts{0, 0, 0}},
		{"one", counts{1, 1, 3}},
		{"one\n", counts{2, 1, 4}},
		{"one two\nthree", counts{2, 3, 13}},
		{"  \t\n  ", counts{2, 0, 6}},
		{"grüße welt", counts{1, 2, 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, count(tt.content), "content %q", tt.content)
	}
}

func TestWc(t *testing.T) {
	s := New()

	_, err := s.Wc(nil)
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)

	out, err := s.Wc([]string{"/etc/config.txt", "/nope", "/etc", "/etc/system.conf"})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"  3  3  41 /etc/config.txt",
		"Error: wc /nope: no such file or directory",
		"Error: wc /etc: not a file",
		"  2  4  41 /etc/system.conf",
		"  5  7  82 total",
	}, "\n"), out)

	out, err = s.Wc([]string{"/etc/config.txt/"})
	require.NoError(t, err)
	assert.Equal(t, "Error: wc /etc/config.txt/: not a directory", out)

	// A single argument never gets a total row, even if it failed.
	out, err = s.Wc([]string{"/nope"})
	require.NoError(t, err)
	assert.Equal(t, "Error: wc /nope: no such file or directory", out)
}

func TestFind(t *testing.T) {
	s := New()

	tests := []struct {
		args []string
		want []string
	}{
		{
			args: []string{"/etc"},
			want: []string{"/etc", "/etc/config.txt", "/etc/system.conf"},
		},
		{
			args: []string{"/", "-type", "d"},
			want: []string{"/", "/home", "/home/user", "/home/user/documents", "/home/user/downloads", "/etc", "/var", "/var/log", "/bin", "/tmp"},
		},
		{
			args: []string{"/", "-name", "*.txt"},
			want: []string{"/home/user/documents/readme.txt", "/home/user/documents/notes.txt", "/etc/config.txt"},
		},
		{
			args: []string{"-name", "*.txt", "-type", "f", "/etc"},
			want: []string{"/etc/config.txt"},
		},
		{
			args: []string{"/home", "-name", "????"},
			want: []string{"/home", "/home/user"},
		},
		{
			args: []string{"/", "-name", "*s", "-type", "d"},
			want: []string{"/home/user/documents", "/home/user/downloads"},
		},
		{
			args: []string{"/", "-name", "nothing"},
			want: []string{"find: no matches"},
		},
	}

	for _, tt := range tests {
		out, err := s.Find(tt.args)
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, strings.Join(tt.want, "\n"), out, "args %v", tt.args)
	}
}

func TestFindDefaultPath(t *testing.T) {
	s := New()
	_, err := s.Cd([]string{"/etc"})
	require.NoError(t, err)

	// Without a path find starts one level above the current directory.
	out, err := s.Find([]string{"-name", "config.txt"})
	require.NoError(t, err)
	assert.Equal(t, "../etc/config.txt", out)

	out, err = s.Find([]string{"."})
	require.NoError(t, err)
	assert.Equal(t, "./config.txt", strings.Split(out, "\n")[1])
}

func TestFindInvalidArgs(t *testing.T) {
	s := New()
	for _, args := range [][]string{
		{"-name"},
		{"/", "-type"},
		{"-type", "x"},
		{"-size", "1"},
		{"/etc", "/tmp"},
	} {
		_, err := s.Find(args)
		assert.ErrorIs(t, err, vfs.ErrInvalidArgument, "args %v", args)
	}
	_, err := s.Find([]string{"/nope"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
}

// Without filters find visits the start directory and everything below it exactly once.
func TestFindVisitsEveryNodeOnce(t *testing.T) {
	s := New()
	out, err := s.Find([]string{"/"})
	require.NoError(t, err)
	paths := strings.Split(out, "\n")
	assert.Len(t, paths, countNodes(t, s.Root()))

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "visited %s twice", p)
		seen[p] = true
		_, _, err := s.Resolve(p)
		assert.NoError(t, err, p)
	}
}

func TestCp(t *testing.T) {
	s := New()

	out, err := s.Cp([]string{"/etc/config.txt", "/tmp/c.txt"})
	require.NoError(t, err)
	assert.Equal(t, "copied '/etc/config.txt' to '/tmp/c.txt'", out)
	src, _, _ := s.Resolve("/etc/config.txt")
	dst, _, _ := s.Resolve("/tmp/c.txt")
	assert.NotSame(t, src, dst)
	assert.Equal(t, src.(*vfs.File).Content(), dst.(*vfs.File).Content())

	// An omitted destination name keeps the source's name.
	_, err = s.Cp([]string{"/home/user", "/tmp/"})
	require.NoError(t, err)
	assert.Equal(t, s.Execute("find /home/user"), strings.ReplaceAll(s.Execute("find /tmp/user"), "/tmp/user", "/home/user"))

	// The copy is independent from the source.
	_, err = s.Mkdir([]string{"/tmp/user/extra"})
	require.NoError(t, err)
	assert.Equal(t, "documents/\ndownloads/", s.Execute("ls /home/user"))
	assert.Equal(t, "documents/\ndownloads/\nextra/", s.Execute("ls /tmp/user"))

	// Copying a directory into itself copies the state before the copy was made.
	_, err = s.Cp([]string{"/var", "/var/log/var"})
	require.NoError(t, err)
	assert.Equal(t, "/var/log/var\n/var/log/var/log\n/var/log/var/log/app.log", s.Execute("find /var/log/var"))

	_, err = s.Cp([]string{"/etc/config.txt", "/tmp/c.txt"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	_, err = s.Cp([]string{"/etc/config.txt", "/tmp"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	_, err = s.Cp([]string{"/nope", "/tmp/x"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
	_, err = s.Cp([]string{"/etc/config.txt", "/nope/x"})
	assert.ErrorIs(t, err, vfs.ErrInvalidPath)
	_, err = s.Cp([]string{"/", "/tmp/"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
	_, err = s.Cp([]string{"/etc/config.txt"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
}

func TestMv(t *testing.T) {
	s := New()
	root := s.Root()
	etc, _, _ := s.Resolve("/etc")
	tmp, _, _ := s.Resolve("/tmp")
	file, _, _ := s.Resolve("/etc/config.txt")

	out, err := s.Mv([]string{"/etc/config.txt", "/tmp/moved.txt"})
	require.NoError(t, err)
	assert.Equal(t, "moved '/etc/config.txt' to '/tmp/moved.txt'", out)
	assert.Equal(t, 1, etc.(*vfs.Dir).Len())
	assert.Equal(t, 1, tmp.(*vfs.Dir).Len())
	moved, _, err := s.Resolve("/tmp/moved.txt")
	require.NoError(t, err)
	assert.Same(t, file, moved, "mv must transfer the node, not copy it")
	assert.Equal(t, "moved.txt", moved.Name())

	// Directories keep their children.
	user, _, _ := s.Resolve("/home/user")
	_, err = s.Mv([]string{"/home/user", "/tmp/"})
	require.NoError(t, err)
	got, _, err := s.Resolve("/tmp/user")
	require.NoError(t, err)
	assert.Same(t, user, got)
	assert.Equal(t, "", s.Execute("ls /home"))

	// Renaming in place.
	_, err = s.Mv([]string{"/tmp/user", "/tmp/person"})
	require.NoError(t, err)
	assert.Equal(t, "moved.txt\nperson/", s.Execute("ls /tmp"))

	// Moving an entry onto itself is refused like any other existing destination.
	_, err = s.Mv([]string{"/tmp", "/"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	assert.Equal(t, "Error: mv /bin: already exists", s.Execute("mv /bin /bin"))
	assert.Equal(t, 5, root.Len())

	_, err = s.Mv([]string{"/tmp/moved.txt", "/bin/script.sh"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	_, err = s.Mv([]string{"/nope", "/tmp/x"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
	_, err = s.Mv([]string{"/nope/x", "/tmp/x"})
	assert.ErrorIs(t, err, vfs.ErrNotFound)
	_, err = s.Mv([]string{"/tmp/moved.txt", "/nope/x"})
	assert.ErrorIs(t, err, vfs.ErrInvalidPath)
	_, err = s.Mv([]string{"/", "/tmp/root"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
	_, err = s.Mv([]string{"/tmp"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
}

// A move whose attach step fails leaves the source exactly where it was, including its position
// among its siblings.
func TestTransferRestoresOnFailure(t *testing.T) {
	s := New()
	etc, _, _ := s.Resolve("/etc")
	bin, _, _ := s.Resolve("/bin")
	before := s.Execute("find /")

	err := s.transfer(etc.(*vfs.Dir), "config.txt", bin.(*vfs.Dir), "script.sh")
	assert.ErrorIs(t, err, vfs.ErrExists)
	assert.Equal(t, before, s.Execute("find /"))
	assert.Equal(t, "/etc\n/etc/config.txt\n/etc/system.conf", s.Execute("find /etc"))

	err = s.transfer(etc.(*vfs.Dir), "missing", bin.(*vfs.Dir), "x")
	assert.ErrorIs(t, err, vfs.ErrNotFound)
}

func TestMvIntoSelf(t *testing.T) {
	s := New()
	before := s.Execute("find /")

	for _, dst := range []string{"/home/user/x", "/home/", "/home/user/documents/", "/home/user/../user/documents/x"} {
		_, err := s.Mv([]string{"/home", dst})
		assert.ErrorIs(t, err, vfs.ErrMoveIntoSelf, "dst %s", dst)
	}
	assert.Equal(t, "Error: mv /home/user/x: cannot move directory into itself or a subdirectory", s.Execute("mv /home /home/user/x"))
	assert.Equal(t, before, s.Execute("find /"), "a refused move must leave the tree unchanged")

	// Moving into a sibling with a similar name is fine.
	_, err := s.Mkdir([]string{"/homework"})
	require.NoError(t, err)
	_, err = s.Mv([]string{"/home", "/homework/"})
	assert.NoError(t, err)
}

func TestMkdir(t *testing.T) {
	s := New()

	out, err := s.Mkdir([]string{"/tmp/x"})
	require.NoError(t, err)
	assert.Equal(t, "created directory '/tmp/x'", out)
	_, err = s.Cd([]string{"/tmp"})
	require.NoError(t, err)
	_, err = s.Mkdir([]string{"x/y"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x\n/tmp/x/y", s.Execute("find /tmp/x"))

	// A trailing slash still names the directory to create.
	assert.Equal(t, "created directory '/tmp/z/'", s.Execute("mkdir /tmp/z/"))
	assert.Equal(t, "x/\nz/", s.Execute("ls /tmp"))
	_, err = s.Mkdir([]string{"z//"})
	assert.ErrorIs(t, err, vfs.ErrExists)

	_, err = s.Mkdir([]string{"x"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	_, err = s.Mkdir([]string{"/tmp/"})
	assert.ErrorIs(t, err, vfs.ErrExists)
	_, err = s.Mkdir([]string{"/"})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
	_, err = s.Mkdir([]string{".."})
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
	_, err = s.Mkdir([]string{"/a/b/c"})
	assert.ErrorIs(t, err, vfs.ErrInvalidPath)
	_, err = s.Mkdir([]string{"/etc/config.txt/x"})
	assert.ErrorIs(t, err, vfs.ErrInvalidPath)
	_, err = s.Mkdir(nil)
	assert.ErrorIs(t, err, vfs.ErrInvalidArgument)
}
