package main

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/db"
	"github.com/donkronk/clipstack/internal/ops"
)

// setupTestApp creates a temporary database and a CLI app bound to it.
func setupTestApp(t *testing.T) (*sql.DB, *config.Config, func(args ...string) (string, error)) {
	t.Helper()

	baseDir := t.TempDir()
	database, err := db.Init(baseDir)
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	cfg := config.DefaultConfig()
	app := newCLIApp(database, cfg, db.Path(baseDir))

	run := func(args ...string) (string, error) {
		t.Helper()
		old := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		runErr := app.Run(append([]string{"clipstack"}, args...))

		w.Close()
		os.Stdout = old
		out, _ := io.ReadAll(r)
		return string(out), runErr
	}

	return database, cfg, run
}

func seed(t *testing.T, database *sql.DB, cfg *config.Config, contents ...string) {
	t.Helper()
	for _, c := range contents {
		if _, err := ops.Add(database, cfg, ops.AddInput{Content: c}); err != nil {
			t.Fatalf("seed Add(%q) failed: %v", c, err)
		}
	}
}

func TestCLI_AddAndList(t *testing.T) {
	_, _, run := setupTestApp(t)

	out, err := run("add", "hello", "world")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "added entry") {
		t.Errorf("add output = %q", out)
	}

	// Adding the same text again refreshes instead of inserting
	out, err = run("add", "hello", "world")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "refreshed existing entry") {
		t.Errorf("duplicate add output = %q", out)
	}

	out, err = run("list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "hello world") {
		t.Errorf("list output = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("list should have exactly one row:\n%s", out)
	}
}

func TestCLI_ListEmpty(t *testing.T) {
	_, _, run := setupTestApp(t)

	out, err := run("ls")
	if err != nil {
		t.Fatalf("ls failed: %v", err)
	}
	if !strings.Contains(out, "history is empty") {
		t.Errorf("output = %q", out)
	}
}

func TestCLI_GetQuiet(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "raw\ncontent")

	out, err := run("get", "--quiet", "1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != "raw\ncontent" {
		t.Errorf("quiet get = %q, want the raw content and nothing else", out)
	}
}

func TestCLI_GetOutOfRange(t *testing.T) {
	_, _, run := setupTestApp(t)

	_, err := run("get", "5")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("error = %v, want NOT_FOUND code", err)
	}
}

func TestCLI_PositionValidation(t *testing.T) {
	_, _, run := setupTestApp(t)

	_, err := run("get")
	if err == nil || !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("missing position error = %v", err)
	}

	_, err = run("get", "abc")
	if err == nil || !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("bad position error = %v", err)
	}
}

func TestCLI_Search(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "learn Python", "grocery list", "python3 script")

	out, err := run("search", "python")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("want two match rows:\n%s", out)
	}

	out, err = run("find", "nothing-matches-this")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.Contains(out, "no matches") {
		t.Errorf("output = %q", out)
	}
}

func TestCLI_DeleteAndClear(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "a", "b", "keep")

	if _, err := ops.Pin(database, ops.PinInput{Position: 1}); err != nil {
		t.Fatalf("Pin failed: %v", err)
	}

	out, err := run("delete", "2")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "deleted entry 2: b") {
		t.Errorf("delete output = %q", out)
	}

	out, err = run("clear", "--force")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !strings.Contains(out, "removed 1 entries") {
		t.Errorf("clear output = %q", out)
	}

	out, err = run("list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "keep") {
		t.Errorf("pinned entry should survive clear: %q", out)
	}

	out, err = run("clear", "--force", "--all")
	if err != nil {
		t.Fatalf("clear --all failed: %v", err)
	}
	if !strings.Contains(out, "removed 1 entries") {
		t.Errorf("clear --all output = %q", out)
	}
}

func TestCLI_PinUnpinMarker(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "pin me")

	if _, err := run("pin", "1"); err != nil {
		t.Fatalf("pin failed: %v", err)
	}

	out, err := run("list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.HasPrefix(out, "* ") {
		t.Errorf("pinned row should carry the marker:\n%s", out)
	}

	if _, err := run("unpin", "1"); err != nil {
		t.Fatalf("unpin failed: %v", err)
	}

	out, err = run("list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if strings.HasPrefix(out, "* ") {
		t.Errorf("unpinned row must not carry the marker:\n%s", out)
	}
}

func TestCLI_Stats(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "one two three")

	out, err := run("stats")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "entries:  1 (0 pinned)") {
		t.Errorf("stats output = %q", out)
	}
	if !strings.Contains(out, "words:    3") {
		t.Errorf("stats output = %q", out)
	}
}

func TestCLI_ExportImportRoundTrip(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "first", "second")

	exportPath := filepath.Join(t.TempDir(), "backup.json")
	out, err := run("export", "--output", exportPath)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "exported 2 entries") {
		t.Errorf("export output = %q", out)
	}

	if _, err := run("clear", "--force", "--all"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	out, err = run("import", exportPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "imported 2 records") {
		t.Errorf("import output = %q", out)
	}

	result, err := ops.List(database, ops.ListInput{Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}
}

func TestCLI_ExportText(t *testing.T) {
	database, cfg, run := setupTestApp(t)
	seed(t, database, cfg, "plain entry")

	out, err := run("export", "--format", "txt")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "=== Entry 1 (") {
		t.Errorf("txt export = %q", out)
	}
	if !strings.Contains(out, "plain entry") {
		t.Errorf("txt export = %q", out)
	}
}

func TestCLI_ExportUnknownFormat(t *testing.T) {
	_, _, run := setupTestApp(t)

	_, err := run("export", "--format", "yaml")
	if err == nil || !strings.Contains(err.Error(), "UNSUPPORTED_FORMAT") {
		t.Errorf("error = %v, want UNSUPPORTED_FORMAT code", err)
	}
}

func TestIsCLIMode(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"clipstack"}, false},
		{[]string{"clipstack", "list"}, true},
		{[]string{"clipstack", "ls"}, true},
		{[]string{"clipstack", "rm"}, true},
		{[]string{"clipstack", "--help"}, true},
		{[]string{"clipstack", "-v"}, true},
		{[]string{"clipstack", "bogus"}, false},
	}

	for _, tt := range tests {
		os.Args = tt.args
		if got := isCLIMode(); got != tt.want {
			t.Errorf("isCLIMode(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestBaseDir_EnvOverride(t *testing.T) {
	t.Setenv("CLIPSTACK_DIR", "/custom/dir")
	dir, err := baseDir()
	if err != nil {
		t.Fatalf("baseDir failed: %v", err)
	}
	if dir != "/custom/dir" {
		t.Errorf("dir = %q, want /custom/dir", dir)
	}
}

func TestDBFlagValue(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"clipstack", "--db", "/tmp/store", "list"}
	dir, ok := dbFlagValue()
	if !ok || dir != "/tmp/store" {
		t.Errorf("dbFlagValue = (%q, %v)", dir, ok)
	}
	if len(os.Args) != 2 || os.Args[1] != "list" {
		t.Errorf("args after strip = %v", os.Args)
	}

	os.Args = []string{"clipstack", "list", "--db=/other"}
	dir, ok = dbFlagValue()
	if !ok || dir != "/other" {
		t.Errorf("dbFlagValue = (%q, %v)", dir, ok)
	}
	if len(os.Args) != 2 || os.Args[1] != "list" {
		t.Errorf("args after strip = %v", os.Args)
	}

	os.Args = []string{"clipstack", "list"}
	if _, ok = dbFlagValue(); ok {
		t.Error("no flag should report false")
	}
}
