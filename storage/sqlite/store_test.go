package sqlite

import (
	"path/filepath"
	"testing"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	if _, found, err := store.ReadRecord("timeLoopGameSave"); err != nil || found {
		t.Fatalf("expected absent slot, got found=%v err=%v", found, err)
	}

	if err := store.WriteRecord("timeLoopGameSave", []byte(`{"loopCount":1}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.WriteRecord("timeLoopGameSave", []byte(`{"loopCount":4}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, found, err := store.ReadRecord("timeLoopGameSave")
	if err != nil || !found {
		t.Fatalf("read: found=%v err=%v", found, err)
	}
	if string(got) != `{"loopCount":4}` {
		t.Fatalf("blob = %q, want latest write", got)
	}
}

func TestListAndDelete(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	for _, slot := range []string{"b", "a", "c"} {
		if err := store.WriteRecord(slot, []byte("{}")); err != nil {
			t.Fatalf("write %s: %v", slot, err)
		}
	}
	if err := store.DeleteRecord("b"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	slots, err := store.ListRecords()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 2 || slots[0] != "a" || slots[1] != "c" {
		t.Fatalf("slots = %v, want [a c]", slots)
	}
}

func TestReopenKeepsRecordsAndMigrationsOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "saves.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.WriteRecord("slot", []byte("persisted")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, found, err := reopened.ReadRecord("slot")
	if err != nil || !found || string(got) != "persisted" {
		t.Fatalf("read after reopen: %q found=%v err=%v", got, found, err)
	}

	var applied int
	if err := reopened.sqlDB.QueryRow("SELECT COUNT(*) FROM " + migrationTable).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("applied migrations = %d, want 1", applied)
	}
}

func TestUpSection(t *testing.T) {
	t.Parallel()

	got := upSection("-- +migrate Up\nCREATE TABLE x (id INT);\n-- +migrate Down\nDROP TABLE x;")
	if got != "\nCREATE TABLE x (id INT);\n" {
		t.Fatalf("up section = %q", got)
	}
	if got := upSection("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("unmarked content = %q", got)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
