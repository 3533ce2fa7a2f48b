package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/donkronk/clipstack/internal/entry"
)

// previewWidth caps a rendered content line in list and search output.
const previewWidth = 80

// preview flattens content to a single line and truncates it for display.
// Newlines become a visible " [NL] " marker so multi-line entries stay on
// one row.
func preview(content string, width int) string {
	flat := strings.ReplaceAll(content, "\r\n", "\n")
	flat = strings.ReplaceAll(flat, "\n", " [NL] ")
	flat = strings.TrimSpace(flat)

	runes := []rune(flat)
	if len(runes) <= width {
		return flat
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// formatTimestamp renders an entry timestamp relative to today:
// "Today 14:32", "Yesterday 09:15", "Jan 02 14:32" within the current year,
// and "2006-01-02" beyond it.
func formatTimestamp(t time.Time) string {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	switch {
	case day.Equal(today):
		return "Today " + t.Format("15:04")
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday " + t.Format("15:04")
	case t.Year() == now.Year():
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

// entryLine renders one row of list/search output.
func entryLine(position int, e *entry.Entry) string {
	pin := "  "
	if e.Pinned {
		pin = "* "
	}
	return fmt.Sprintf("%s%2d. [%s] %s", pin, position, formatTimestamp(e.Touched()), preview(e.Content, previewWidth))
}
