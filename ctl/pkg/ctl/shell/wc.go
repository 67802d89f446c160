package shell

import (
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/vfsemu/vfsemu/common/vfs"
)

type counts struct {
	lines int
	words int
	chars int
}

func (c counts) row(name string) string {
	return fmt.Sprintf("  %d  %d  %d %s", c.lines, c.words, c.chars, name)
}

// count returns the line, word and character counts of content. Lines are the number of newlines
// plus one for non-empty content, so content without a trailing newline still counts its last
// line.
func count(content string) counts {
	c := counts{
		lines: strings.Count(content, "\n"),
		words: len(strings.Fields(content)),
		chars: utf8.RuneCountInString(content),
	}
	if content != "" {
		c.lines++
	}
	return c
}

// Wc prints line, word and character counts for each file. A path that is missing or not a file
// produces an error row and does not stop the remaining files from being counted. When more than
// one path is given a total row for the counted files is appended.
func (s *Shell) Wc(args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("wc", "specify at least one file")
	}
	var rows []string
	var total counts
	for _, path := range args {
		n, _, err := s.Resolve(path)
		if err != nil {
			rows = append(rows, errorPrefix+opError("wc", err).Error())
			continue
		}
		f, ok := n.(*vfs.File)
		if !ok {
			rows = append(rows, errorPrefix+(&fs.PathError{Op: "wc", Path: path, Err: vfs.ErrNotFile}).Error())
			continue
		}
		c := count(f.Content())
		total.lines += c.lines
		total.words += c.words
		total.chars += c.chars
		rows = append(rows, c.row(path))
	}
	if len(args) > 1 {
		rows = append(rows, total.row("total"))
	}
	return strings.Join(rows, "\n"), nil
}
