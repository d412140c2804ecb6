package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirListsFontsOnly(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.md"))

	got, err := ScanDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("ScanDir = %v, want two fonts", got)
	}
	if missing, err := ScanDir(filepath.Join(dir, "nope")); err != nil || len(missing) != 0 {
		t.Errorf("missing dir: %v, %v", missing, err)
	}
}

func TestFindInPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Bold.ttf"))

	got, err := FindIn([]string{filepath.Join(dir, "absent"), dir}, "inter")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "Inter-Regular.ttf" {
		t.Errorf("got %s", got)
	}
	if got, err := FindIn([]string{dir}, "Google Sans"); err != nil || filepath.Base(got) != "GoogleSans-Bold.ttf" {
		t.Errorf("fuzzy match: %s, %v", got, err)
	}
	if _, err := FindIn([]string{dir}, "Roboto"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
	if _, err := FindIn([]string{dir}, " "); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("blank search err = %v", err)
	}
}
