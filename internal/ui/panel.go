package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders a bar with done/total counts.
func (t Theme) ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}

// Box frames lines with the theme's panel border.
func (t Theme) Box(lines []string) string {
	return t.Panel.Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most max runes, ending with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
