// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/ayoisaiah/lumen/store/sqlite"
)

// NewStore returns an in-memory store seeded with the default presets. It
// is closed when the test ends.
func NewStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sqlite.NewMemory(context.Background())
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})

	return db
}
