package settings

import (
	"path/filepath"
	"testing"
)

func TestFileStoreSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill_settings.json")

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	if _, ok, _ := fs.Get("default_feed"); ok {
		t.Fatalf("fresh store should be empty")
	}

	if err := fs.Set("default_feed", "NPR"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := fs.Get("default_feed")
	if err != nil || !ok || v != "NPR" {
		t.Fatalf("Get = (%q, %v, %v)", v, ok, err)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill_settings.json")

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := fs.Set("default_feed", "BBC"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	fs.Close()

	again, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, err := again.Get("default_feed")
	if err != nil || !ok || v != "BBC" {
		t.Fatalf("Get after reopen = (%q, %v, %v)", v, ok, err)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill_settings.json")

	fs, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := fs.Set("default_feed", "NPR"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Set("default_feed", "PBS"); err != nil {
		t.Fatal(err)
	}
	v, _, _ := fs.Get("default_feed")
	if v != "PBS" {
		t.Errorf("value = %q, want PBS", v)
	}
}

func TestOpenPicksFileStoreWithoutDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill_settings.json")

	store, err := Open(Options{FilePath: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*FileStore); !ok {
		t.Errorf("store = %T, want *FileStore", store)
	}
}
