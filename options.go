package main

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// PrintOptions selects which sections each page carries and the physical
// page the transport should target. Page size and orientation only affect
// the surrounding page CSS, never the logical row geometry.
type PrintOptions struct {
	IncludeChordDiagrams bool   `yaml:"chord_diagrams"`
	IncludeTablature     bool   `yaml:"tablature"`
	IncludeNotation      bool   `yaml:"notation"`
	PageSize             string `yaml:"page_size"`   // "letter" or "a4"
	Orientation          string `yaml:"orientation"` // "portrait" or "landscape"
}

func defaultPrintOptions() PrintOptions {
	return PrintOptions{
		IncludeChordDiagrams: true,
		IncludeTablature:     true,
		IncludeNotation:      true,
		PageSize:             "letter",
		Orientation:          "portrait",
	}
}

func (o PrintOptions) validate() error {
	switch o.PageSize {
	case "letter", "a4":
	default:
		return fmt.Errorf("unknown page size %q (want letter or a4)", o.PageSize)
	}
	switch o.Orientation {
	case "portrait", "landscape":
	default:
		return fmt.Errorf("unknown orientation %q (want portrait or landscape)", o.Orientation)
	}
	return nil
}

// loadPrintOptions reads a YAML options file over the defaults.
func loadPrintOptions(filepath string) (PrintOptions, error) {
	opts := defaultPrintOptions()
	content, err := ioutil.ReadFile(filepath)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(content, &opts); err != nil {
		return opts, fmt.Errorf("could not parse %v: %v", filepath, err)
	}
	if err := opts.validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
