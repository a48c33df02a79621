package warp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestResolveLibraryPathDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xsdir"), "comment line\n92235.03c 235.0 0.0 endf71x/92235.710nc\n1001.03c 1.0 0.0 endf71x/1001.710nc\n")

	got, err := ResolveLibraryPath("92235.03c", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "endf71x/92235.710nc")
	if got != want {
		t.Errorf("want %s but have %s", want, got)
	}
}

func TestResolveLibraryPathSelfIsXsdirWithDatapathDirective(t *testing.T) {
	dir := t.TempDir()
	libDir := t.TempDir()
	xsdirPath := filepath.Join(dir, "my_xsdir")
	writeFile(t, xsdirPath, "datapath="+libDir+"\n92235.03c 235.0 0.0 endf71x/92235.710nc\n")

	got, err := ResolveLibraryPath("92235.03c", xsdirPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(libDir, "endf71x/92235.710nc")
	if got != want {
		t.Errorf("want %s but have %s", want, got)
	}
}

func TestResolveLibraryPathNuclideNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xsdir"), "comment\n1001.03c 1.0 0.0 endf71x/1001.710nc\n")

	_, err := ResolveLibraryPath("92235.03c", dir)
	if !errors.Is(err, ErrNuclideNotFound) {
		t.Errorf("want ErrNuclideNotFound but have %v", err)
	}
}

func TestResolveLibraryPathXsdirNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := ResolveLibraryPath("92235.03c", dir)
	if !errors.Is(err, ErrXsdirNotFound) {
		t.Errorf("want ErrXsdirNotFound but have %v", err)
	}
}
