package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderSongPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	err := RenderSongPDF(testSong(), DefaultFingeringTable(), defaultPrintOptions(), path)
	if err != nil {
		t.Fatal(err)
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Error("output does not start with a pdf header")
	}
}

func TestRenderSongPDFAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "noext")
	err := RenderSongPDF(testSong(), DefaultFingeringTable(), defaultPrintOptions(), base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ioutil.ReadFile(base + ".pdf"); err != nil {
		t.Errorf("expected %v.pdf to exist: %v", base, err)
	}
}
