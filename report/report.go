package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/taigrr/colorhash"
)

// PrintTop writes the ranked top-n listing to w. With color enabled, each
// hashtag gets a deterministic 256-color foreground derived from its token,
// so the same tag renders the same color across runs.
func PrintTop(w io.Writer, c *Counter, n int, color bool) {
	fmt.Fprintf(w, "\nTop %d hashtags:\n", n)
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for i, entry := range c.Top(n) {
		label := fmt.Sprintf("#%-30s", entry.Tag)
		if color {
			label = colorize(entry.Tag, label)
		}
		fmt.Fprintf(w, "%2d. %s %6dx\n", i+1, label, entry.Count)
	}
}

// colorize wraps s in an ANSI 256-color escape picked from the 6x6x6 color
// cube (indices 16-231) by hashing the tag.
func colorize(tag, s string) string {
	idx := 16 + colorhash.HashString(tag)%216
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", idx, s)
}
