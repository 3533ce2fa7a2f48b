package entry

import (
	"testing"
	"time"
)

func TestNew_ComputesDerivedFields(t *testing.T) {
	e := New("hello world", SourceManual)

	if e.Content != "hello world" {
		t.Errorf("Content = %q, want %q", e.Content, "hello world")
	}
	if e.CharCount != 11 {
		t.Errorf("CharCount = %d, want 11", e.CharCount)
	}
	if e.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", e.WordCount)
	}
	if e.Source != SourceManual {
		t.Errorf("Source = %q, want %q", e.Source, SourceManual)
	}
	if e.Pinned {
		t.Error("new entries should not be pinned")
	}
	if e.LastTouchedAt == 0 {
		t.Error("LastTouchedAt should be set")
	}
}

func TestNew_UnicodeCharCount(t *testing.T) {
	// Rune count, not byte count
	e := New("héllo wörld", SourceClipboard)
	if e.CharCount != 11 {
		t.Errorf("CharCount = %d, want 11", e.CharCount)
	}
}

func TestNew_WordCountMultilineWhitespace(t *testing.T) {
	e := New("one\ntwo\t three  four\n", SourceWatch)
	if e.WordCount != 4 {
		t.Errorf("WordCount = %d, want 4", e.WordCount)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("some content")
	b := Fingerprint("some content")
	c := Fingerprint("other content")

	if a != b {
		t.Errorf("same content produced different fingerprints: %s vs %s", a, b)
	}
	if a == c {
		t.Error("different content produced the same fingerprint")
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}

func TestToExportRecord_RoundTripFields(t *testing.T) {
	e := New("export me", SourceImport)
	e.ID = 42
	e.Pinned = true

	rec := ToExportRecord(e)
	if rec.ID != 42 || rec.Content != "export me" || !rec.Pinned {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Fingerprint != e.Fingerprint {
		t.Errorf("Fingerprint = %q, want %q", rec.Fingerprint, e.Fingerprint)
	}

	parsed, err := time.Parse(time.RFC3339Nano, rec.LastTouchedAt)
	if err != nil {
		t.Fatalf("LastTouchedAt %q is not RFC3339Nano: %v", rec.LastTouchedAt, err)
	}
	if parsed.UnixNano() != e.LastTouchedAt {
		t.Errorf("timestamp round-trip = %d, want %d", parsed.UnixNano(), e.LastTouchedAt)
	}
}
