package shell

import (
	"strings"

	"github.com/vfsemu/vfsemu/common/vfs"
)

// defaultFindPath is where find starts when no path is given. It is the parent of the current
// directory, not the current directory itself.
const defaultFindPath = ".."

type findArgs struct {
	path     string
	name     string
	hasName  bool
	nodeType string
}

func parseFindArgs(args []string) (findArgs, error) {
	parsed := findArgs{path: defaultFindPath}
	pathSet := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-name", "-type":
			if i+1 >= len(args) {
				return findArgs{}, usageError("find", "missing value for %s", arg)
			}
			i++
			if arg == "-name" {
				parsed.name, parsed.hasName = args[i], true
				continue
			}
			if args[i] != "f" && args[i] != "d" {
				return findArgs{}, usageError("find", "unknown type '%s' (expected f or d)", args[i])
			}
			parsed.nodeType = args[i]
		default:
			if strings.HasPrefix(arg, "-") {
				return findArgs{}, usageError("find", "unknown option '%s'", arg)
			}
			if pathSet {
				return findArgs{}, usageError("find", "only one start path is supported")
			}
			parsed.path, pathSet = arg, true
		}
	}
	return parsed, nil
}

func (a findArgs) matches(n vfs.Node) bool {
	switch n.(type) {
	case *vfs.Dir:
		if a.nodeType == "f" {
			return false
		}
	case *vfs.File:
		if a.nodeType == "d" {
			return false
		}
	}
	return !a.hasName || MatchName(a.name, n.Name())
}

// Find walks the start path and everything below it in insertion order and prints the path of
// every node that passes the -name and -type filters. Paths are built from the start path as it
// was given, so "find /etc" prints "/etc/config.txt" while "find ." prints "./config.txt".
func (s *Shell) Find(args []string) (string, error) {
	parsed, err := parseFindArgs(args)
	if err != nil {
		return "", err
	}
	start, _, err := s.Resolve(parsed.path)
	if err != nil {
		return "", opError("find", err)
	}
	var results []string
	err = vfs.Walk(start, parsed.path, func(path string, n vfs.Node) error {
		if parsed.matches(n) {
			results = append(results, path)
		}
		return nil
	})
	if err != nil {
		return "", opError("find", err)
	}
	if len(results) == 0 {
		return "find: no matches", nil
	}
	return strings.Join(results, "\n"), nil
}
