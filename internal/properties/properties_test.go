package properties

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/eugenenazirov/pbpaths/internal/pbconfig"
)

var _ pbconfig.Source = (*MemoryStore)(nil)

func TestMemoryStoreSetLookup(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if _, ok := store.Lookup("TREEBANKDIR"); ok {
		t.Fatalf("expected empty store")
	}

	if err := store.Set("TREEBANKDIR", " /data/trees "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := store.Lookup("TREEBANKDIR")
	if !ok || got != " /data/trees " {
		t.Fatalf("expected verbatim value, got %q (present=%v)", got, ok)
	}

	if err := store.Set("TREEBANKDIR", "/other"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := store.Lookup("TREEBANKDIR"); got != "/other" {
		t.Fatalf("expected replaced value, got %q", got)
	}
}

func TestSetRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	testCases := []string{"", "A=B", "WITH SPACE", "TAB\tKEY", "NEW\nLINE"}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStore()
			if err := store.Set(tc, "x"); !errors.Is(err, ErrInvalidKey) {
				t.Fatalf("expected ErrInvalidKey for %q, got %v", tc, err)
			}
		})
	}
}

func TestKeysAreSorted(t *testing.T) {
	t.Parallel()

	store, err := FromMap(map[string]string{"TREEBANKDIR": "b", "FRAMEDIR": "a", "PROPBANKFILE": "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"FRAMEDIR", "PROPBANKFILE", "TREEBANKDIR"}
	if got := store.Keys(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pb.yaml")
	content := "PROPBANKFILE: /corpus/prop-all.idx\nFRAMEDIR: /corpus/frames\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	acc := pbconfig.New(store)
	if got := acc.PropBankFile(); got != "/corpus/prop-all.idx" {
		t.Fatalf("unexpected propbank file %q", got)
	}
	if got := acc.TreeBankDir(); got != pbconfig.Default(pbconfig.TreeBankDirKey) {
		t.Fatalf("expected default treebank dir, got %q", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a mapping\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for non-mapping YAML")
	}

	badKey := filepath.Join(t.TempDir(), "badkey.yaml")
	if err := os.WriteFile(badKey, []byte("\"BAD KEY\": x\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadFile(badKey); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	acc := pbconfig.New(store)
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(n int) {
			defer wg.Done()
			if err := store.Set("FRAMEDIR", fmt.Sprintf("/frames/%d", n)); err != nil {
				t.Errorf("Set failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if acc.FrameDir() == "" {
				t.Errorf("FrameDir returned empty string")
			}
		}()
	}

	wg.Wait()

	if !acc.Overridden(pbconfig.FrameDirKey) {
		t.Fatalf("expected FRAMEDIR override after concurrent writes")
	}
}
