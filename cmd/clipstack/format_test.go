package main

import (
	"strings"
	"testing"
	"time"

	"github.com/donkronk/clipstack/internal/entry"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "short content unchanged",
			input:    "hello",
			width:    80,
			expected: "hello",
		},
		{
			name:     "newlines become markers",
			input:    "line one\nline two",
			width:    80,
			expected: "line one [NL] line two",
		},
		{
			name:     "windows line endings",
			input:    "a\r\nb",
			width:    80,
			expected: "a [NL] b",
		},
		{
			name:     "long content truncated with ellipsis",
			input:    strings.Repeat("x", 100),
			width:    10,
			expected: "xxxxxxx...",
		},
		{
			name:     "exact width untouched",
			input:    strings.Repeat("y", 10),
			width:    10,
			expected: strings.Repeat("y", 10),
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  padded  ",
			width:    80,
			expected: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preview(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("preview(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestPreview_UnicodeSafe(t *testing.T) {
	// Truncation must cut on rune boundaries
	got := preview(strings.Repeat("é", 50), 10)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("got %q, want ellipsis suffix", got)
	}
	if strings.ContainsRune(got, '�') {
		t.Errorf("truncation split a rune: %q", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Now()

	got := formatTimestamp(now)
	if !strings.HasPrefix(got, "Today ") {
		t.Errorf("today = %q", got)
	}

	got = formatTimestamp(now.AddDate(0, 0, -1))
	if !strings.HasPrefix(got, "Yesterday ") {
		t.Errorf("yesterday = %q", got)
	}

	old := time.Date(2019, time.March, 5, 12, 0, 0, 0, time.Local)
	if got := formatTimestamp(old); got != "2019-03-05" {
		t.Errorf("old year = %q, want 2019-03-05", got)
	}
}

func TestEntryLine(t *testing.T) {
	e := entry.New("some copied text", entry.SourceClipboard)

	line := entryLine(3, e)
	if !strings.Contains(line, " 3. ") {
		t.Errorf("missing position: %q", line)
	}
	if !strings.Contains(line, "some copied text") {
		t.Errorf("missing content: %q", line)
	}
	if strings.HasPrefix(line, "* ") {
		t.Errorf("unpinned entry must not carry the pin marker: %q", line)
	}

	e.Pinned = true
	line = entryLine(3, e)
	if !strings.HasPrefix(line, "* ") {
		t.Errorf("pinned entry should carry the pin marker: %q", line)
	}
}
