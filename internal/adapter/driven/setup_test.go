package driven

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

func setupTestDB(t *testing.T) (*bbolt.DB, func()) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	}

	return db, cleanup
}
