package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestDefaultPrintOptions(t *testing.T) {
	opts := defaultPrintOptions()
	if err := opts.validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if !opts.IncludeNotation || !opts.IncludeTablature || !opts.IncludeChordDiagrams {
		t.Error("all sections should default to included")
	}
}

func TestPrintOptionsValidate(t *testing.T) {
	opts := defaultPrintOptions()
	opts.PageSize = "legal"
	if opts.validate() == nil {
		t.Error("unknown page size validated")
	}

	opts = defaultPrintOptions()
	opts.Orientation = "sideways"
	if opts.validate() == nil {
		t.Error("unknown orientation validated")
	}
}

func TestLoadPrintOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.yaml")
	content := "notation: false\npage_size: a4\norientation: landscape\n"
	if err := ioutil.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}

	opts, err := loadPrintOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.IncludeNotation {
		t.Error("notation: false not applied")
	}
	if !opts.IncludeTablature {
		t.Error("unset tablature should keep its default")
	}
	if opts.PageSize != "a4" || opts.Orientation != "landscape" {
		t.Errorf("page settings = %v/%v, want a4/landscape", opts.PageSize, opts.Orientation)
	}
}

func TestLoadPrintOptionsRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.yaml")
	if err := ioutil.WriteFile(path, []byte("page_size: tabloid\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPrintOptions(path); err == nil {
		t.Error("invalid page size loaded without error")
	}
}
