package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jordanwest/daykeep/internal/storage"
	"github.com/jordanwest/daykeep/internal/store"
)

func newJSONStore(t *testing.T) (string, *storage.JSONStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daykeep.json")
	s := storage.NewJSONStore(path)
	if err := s.Save(store.NewState()); err != nil {
		t.Fatal(err)
	}
	return path, s
}

func TestCreateAndListJSONBackup(t *testing.T) {
	path, _ := newJSONStore(t)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup extension = %q, want .json", filepath.Ext(backupPath))
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("listed path = %q, want %q", backups[0].Path, backupPath)
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestCreateMissingStoreFails(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := m.Create(); err == nil {
		t.Error("expected error for missing storage file")
	}
}

func TestCreateRejectsCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewManager(path).Create(); err == nil {
		t.Error("expected corrupt storage to be rejected")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	path, s := newJSONStore(t)
	m := NewManager(path)

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	backupPath, err := m.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Mutate the live store, then restore the snapshot over it.
	state := store.NewState()
	st := store.New(state)
	st.ToggleHabit("breathing")
	if err := s.Save(st.State()); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Error("restored storage does not match the backup")
	}

	// Restore should have backed up the pre-restore state too.
	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("expected safety backup before restore, have %d backups", len(backups))
	}
}

func TestRestoreRejectsInvalidBackup(t *testing.T) {
	path, _ := newJSONStore(t)
	m := NewManager(path)

	bad := filepath.Join(t.TempDir(), "daykeep-bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("expected invalid backup to be rejected")
	}
}

func TestSQLiteBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daykeep.db")
	s := storage.NewSQLiteStore(path)
	if err := s.Save(store.NewState()); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	m := NewManager(path)
	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The snapshot must itself be a loadable store.
	restored := storage.NewSQLiteStore(backupPath)
	defer restored.Close()
	if _, err := restored.Load(); err != nil {
		t.Errorf("backup is not a loadable store: %v", err)
	}
}
