package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mzalewska/spellkeep/internal/spellerr"
)

func TestRegisterAndPath(t *testing.T) {
	r, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := r.Register("en", "/data/en.dict"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	path, err := r.Path("en")
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if path != "/data/en.dict" {
		t.Errorf("Path(%q) = %q, want %q", "en", path, "/data/en.dict")
	}
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	r, _ := Open(t.TempDir())
	r.Register("en", "/data/en.dict")
	err := r.Register("en", "/data/other.dict")
	if !errors.Is(err, spellerr.ErrAlreadyPresent) {
		t.Errorf("Register duplicate: err = %v, want ErrAlreadyPresent", err)
	}
}

func TestPathReportsNotFound(t *testing.T) {
	r, _ := Open(t.TempDir())
	if _, err := r.Path("missing"); !errors.Is(err, spellerr.ErrNotFound) {
		t.Errorf("Path(%q): err = %v, want ErrNotFound", "missing", err)
	}
}

func TestNamesSortedAscending(t *testing.T) {
	r, _ := Open(t.TempDir())
	r.Register("pl", "/data/pl.dict")
	r.Register("en", "/data/en.dict")
	r.Register("de", "/data/de.dict")

	got := r.Names()
	want := []string{"de", "en", "pl"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPathForUsesRegistryDir(t *testing.T) {
	dir := t.TempDir()
	r, _ := Open(dir)
	want := filepath.Join(dir, "en.dict")
	if got := r.PathFor("en"); got != want {
		t.Errorf("PathFor(%q) = %q, want %q", "en", got, want)
	}
}

func TestRegistrationsPersistAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	r1, _ := Open(dir)
	if err := r1.Register("en", "/data/en.dict"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r2, err := Open(dir)
	if err != nil {
		t.Fatalf("re-Open: %v", err)
	}
	path, err := r2.Path("en")
	if err != nil || path != "/data/en.dict" {
		t.Errorf("Path(%q) after re-Open = (%q, %v), want (/data/en.dict, nil)", "en", path, err)
	}
}

func TestLenCountsRegisteredNames(t *testing.T) {
	r, _ := Open(t.TempDir())
	r.Register("en", "/data/en.dict")
	r.Register("pl", "/data/pl.dict")
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}
