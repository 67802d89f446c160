package cmdfmt

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSettings(t *testing.T) {
	var buf bytes.Buffer
	PrintSettings(&buf, []Setting{
		{Key: "vfs", Value: "tree.xml"},
		{Key: "script", Value: ""},
		{Key: "log-level", Value: 3},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SETTING")
	assert.Contains(t, lines[0], "VALUE")
	assert.Contains(t, lines[1], "tree.xml")
	assert.Contains(t, lines[2], "(none)")
	assert.Contains(t, lines[3], "log-level")
	assert.Contains(t, lines[3], "3")
}

func TestPrintfWritesToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stderr
	os.Stderr = w
	Printf("unable to load %s\n", "tree.xml")
	os.Stderr = original
	w.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "unable to load tree.xml\n", string(got))
}
