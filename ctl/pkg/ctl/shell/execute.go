package shell

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// errorPrefix marks a failed command in the text returned by Execute.
const errorPrefix = "Error: "

type commandFunc func(s *Shell, args []string) (string, error)

type command struct {
	name  string
	usage string
	help  string
	run   commandFunc
}

// commands is populated in init() because help refers back to it.
var commands map[string]command

func init() {
	list := []command{
		{"ls", "ls [path]", "List the entries of a directory", (*Shell).Ls},
		{"cd", "cd <path>", "Change the current directory", (*Shell).Cd},
		{"pwd", "pwd", "Print the current directory", func(s *Shell, args []string) (string, error) {
			if len(args) != 0 {
				return "", usageError("pwd", "takes no arguments")
			}
			return s.Pwd(), nil
		}},
		{"wc", "wc <file>...", "Count lines, words and characters of files", (*Shell).Wc},
		{"find", "find [path] [-name PATTERN] [-type f|d]", "Search for files and directories (starts at .. by default)", (*Shell).Find},
		{"cp", "cp <src> <dst>", "Copy a file or directory", (*Shell).Cp},
		{"mv", "mv <src> <dst>", "Move or rename a file or directory", (*Shell).Mv},
		{"mkdir", "mkdir <path>", "Create a directory", (*Shell).Mkdir},
		{"tree", "tree [path]", "Show a directory and everything below it", (*Shell).Tree},
		{"vfs-init", "vfs-init", "Replace the tree with the default tree", func(s *Shell, args []string) (string, error) {
			return s.ResetToDefault(), nil
		}},
		{"help", "help", "Show this help message", (*Shell).Help},
	}
	commands = make(map[string]command, len(list))
	for _, c := range list {
		commands[c.name] = c
	}
}

// Help lists the available commands sorted by name.
func (s *Shell) Help(args []string) (string, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	width := 0
	for _, name := range names {
		width = max(width, len(commands[name].usage))
	}
	lines := make([]string, 0, len(names)+1)
	for _, name := range names {
		c := commands[name]
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, c.usage, c.help))
	}
	lines = append(lines, fmt.Sprintf("  %-*s  %s", width, "exit", "Exit the emulator"))
	return strings.Join(lines, "\n"), nil
}

// Execute runs a single command line and returns its output. The line is split on whitespace and
// the first word selects the command, ignoring case. Failures are returned as text starting with
// "Error: " so the caller can always print the result and continue with the next line.
func (s *Shell) Execute(line string) (out string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	name := strings.ToLower(fields[0])
	c, ok := commands[name]
	if !ok {
		return fmt.Sprintf("command not found: %s", fields[0])
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("command panicked", zap.String("command", name), zap.Any("panic", r))
			out = fmt.Sprintf("%s%s: internal error: %v", errorPrefix, name, r)
		}
	}()

	s.log.Debug("executing command", zap.String("command", name), zap.Strings("args", fields[1:]), zap.String("cwd", formatPath(s.cwd)))
	result, err := c.run(s, fields[1:])
	if err != nil {
		s.log.Debug("command failed", zap.String("command", name), zap.Error(err))
		return errorPrefix + err.Error()
	}
	return result
}
