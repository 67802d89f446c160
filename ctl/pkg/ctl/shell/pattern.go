package shell

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Only "*" and "?" are wildcards in a name pattern. Everything doublestar would otherwise treat as
// syntax is escaped so it matches literally.
var patternEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// MatchName reports whether name matches pattern in full. "*" matches any sequence of characters
// including the empty one and "?" matches exactly one character.
func MatchName(pattern string, name string) bool {
	match, err := doublestar.Match(patternEscaper.Replace(pattern), name)
	return err == nil && match
}
