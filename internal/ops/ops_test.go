package ops

import (
	"database/sql"
	"testing"

	"github.com/donkronk/clipstack/internal/config"
	"github.com/donkronk/clipstack/internal/db"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func testConfig() *config.Config {
	return config.DefaultConfig()
}

// mustAdd inserts content via Add, failing the test on any error.
func mustAdd(t *testing.T, database *sql.DB, cfg *config.Config, content string) *AddOutput {
	t.Helper()
	out, err := Add(database, cfg, AddInput{Content: content})
	if err != nil {
		t.Fatalf("Add(%q) failed: %v", content, err)
	}
	return out
}
