package view

import "github.com/mattn/go-runewidth"

// TruncateString cuts s to width display cells, marking the cut with "…".
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func boolText(b *bool, on, off string) string {
	if b == nil {
		return "…"
	}
	if *b {
		return on
	}
	return off
}
