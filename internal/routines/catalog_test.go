package routines

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()
	if len(catalog) != 5 {
		t.Fatalf("Default() has %d routines, want 5", len(catalog))
	}

	push, ok := catalog.Get("Push")
	if !ok {
		t.Fatal("Default() missing Push routine")
	}
	if len(push.Exercises) != 6 {
		t.Errorf("Push has %d exercises, want 6", len(push.Exercises))
	}
	for _, ex := range push.Exercises {
		if ex.Sets < 1 {
			t.Errorf("exercise %q has %d sets", ex.Name, ex.Sets)
		}
	}

	if _, ok := catalog.Get("Cardio"); ok {
		t.Error("Get() found a routine that should not exist")
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	names := Default().Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file replaces catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routines.json")
		content := `[{"name":"Full Body","exercises":[{"name":"Squat","sets":3,"target":"5"}]}]`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		catalog, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() returned unexpected error: %v", err)
		}
		if len(catalog) != 1 {
			t.Fatalf("LoadFile() has %d routines, want 1", len(catalog))
		}
		r, ok := catalog.Get("Full Body")
		if !ok || r.Exercises[0].Name != "Squat" {
			t.Errorf("unexpected routine: %+v", r)
		}
	})

	t.Run("rejects empty routine name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routines.json")
		os.WriteFile(path, []byte(`[{"name":"","exercises":[]}]`), 0600)
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() should reject an empty routine name")
		}
	})

	t.Run("rejects zero set count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routines.json")
		os.WriteFile(path, []byte(`[{"name":"Bad","exercises":[{"name":"Squat","sets":0}]}]`), 0600)
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() should reject a zero set count")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("LoadFile() should fail for a missing file")
		}
	})
}
