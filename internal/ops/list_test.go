package ops

import (
	"testing"

	"github.com/donkronk/clipstack/internal/errors"
)

func TestList_MostRecentFirst(t *testing.T) {
	database := testDB(t)
	cfg := testConfig()

	mustAdd(t, database, cfg, "alpha")
	mustAdd(t, database, cfg, "beta")
	mustAdd(t, database, cfg, "gamma")

	out, err := List(database, ListInput{Limit: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if out.Items[0].Content != "gamma" || out.Items[1].Content != "beta" {
		t.Errorf("wrong order: %q, %q", out.Items[0].Content, out.Items[1].Content)
	}
}

func TestList_ZeroLimit(t *testing.T) {
	database := testDB(t)
	cfg := testConfig()
	mustAdd(t, database, cfg, "alpha")

	out, err := List(database, ListInput{Limit: 0})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Count = %d, want 0 for non-positive limit", out.Count)
	}
}

func TestList_Empty(t *testing.T) {
	database := testDB(t)

	out, err := List(database, ListInput{Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if out.Count != 0 || out.Items == nil {
		t.Errorf("empty history should list zero items, got %+v", out)
	}
}

func TestGet_OutOfRange(t *testing.T) {
	database := testDB(t)
	cfg := testConfig()
	mustAdd(t, database, cfg, "only")

	for _, pos := range []int{0, -3, 2} {
		_, err := Get(database, GetInput{Position: pos})
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("Get(%d) error = %v, want NOT_FOUND", pos, err)
		}
	}
}
