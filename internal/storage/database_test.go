package storage

import (
	"path/filepath"
	"testing"
)

func TestDatabase_SetGet(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	defer db.Close()

	if err := db.Set("studyTasks", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok, err := db.Get("studyTasks")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(value) != `[{"id":"1"}]` {
		t.Errorf("value = %s", value)
	}
}

func TestDatabase_SetOverwrites(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	defer db.Close()

	if err := db.Set("studyGoals", []byte(`[]`)); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if err := db.Set("studyGoals", []byte(`[{"id":"g1"}]`)); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	value, ok, err := db.Get("studyGoals")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":"g1"}]` {
		t.Errorf("value = %s, want the second write", value)
	}
}

func TestDatabase_MissingKey(t *testing.T) {
	db, err := NewDatabase(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	defer db.Close()

	_, ok, err := db.Get("neverWritten")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestDatabase_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")

	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	if err := db.Set("studySessions", []byte(`[{"id":"s1"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	db.Close()

	reopened, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("studySessions")
	if err != nil || !ok {
		t.Fatalf("Get after reopen failed: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":"s1"}]` {
		t.Errorf("value = %s", value)
	}
}
