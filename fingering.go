package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// Fingering maps a chord name to per-string fret positions. Entries run
// from the lowest string (string 6, low E) to the highest (string 1),
// each either "x" (muted), "0" (open) or a positive fret number relative
// to the chord's neck position.
type Fingering struct {
	Name         string   `json:"name"`
	StartingFret int      `json:"startingFret"`
	Fingering    []string `json:"fingering"`
}

// displayOrder reverses the stored low-to-high entries into the
// top-to-bottom drawing order (string 1, high e, first).
func (f Fingering) displayOrder() []string {
	out := make([]string, len(f.Fingering))
	for i, v := range f.Fingering {
		out[len(f.Fingering)-1-i] = v
	}
	return out
}

func (f Fingering) validate() error {
	if f.Name == "" {
		return fmt.Errorf("fingering with empty chord name")
	}
	if len(f.Fingering) != numStrings {
		return fmt.Errorf("fingering for %v must have %v entries, have %v",
			f.Name, numStrings, len(f.Fingering))
	}
	if f.StartingFret < 1 {
		return fmt.Errorf("fingering for %v has starting fret %v",
			f.Name, f.StartingFret)
	}
	return nil
}

// FingeringTable is the read-only chord-name keyed lookup handed to the
// tablature and diagram renderers.
type FingeringTable struct {
	byName map[string]Fingering
}

// Lookup finds the fingering for an exact chord-name string.
func (t *FingeringTable) Lookup(name string) (Fingering, bool) {
	f, ok := t.byName[name]
	return f, ok
}

func newFingeringTable(fings []Fingering) (*FingeringTable, error) {
	t := &FingeringTable{byName: make(map[string]Fingering, len(fings))}
	for _, f := range fings {
		if err := f.validate(); err != nil {
			return nil, err
		}
		t.byName[f.Name] = f
	}
	return t, nil
}

// DefaultFingeringTable covers the common open and first-position chords.
func DefaultFingeringTable() *FingeringTable {
	t, err := newFingeringTable(builtinFingerings)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadFingeringTable reads a fingering table JSON file: an array of
// {name, startingFret, fingering[6]} records, low string first.
func LoadFingeringTable(filepath string) (*FingeringTable, error) {
	content, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	var fings []Fingering
	if err := json.Unmarshal(content, &fings); err != nil {
		return nil, fmt.Errorf("could not parse %v: %v", filepath, err)
	}
	return newFingeringTable(fings)
}

// positions from thick to thin guitar strings
var builtinFingerings = []Fingering{
	{Name: "C", StartingFret: 1, Fingering: []string{"x", "3", "2", "0", "1", "0"}},
	{Name: "C7", StartingFret: 1, Fingering: []string{"x", "3", "2", "3", "1", "0"}},
	{Name: "Cmaj7", StartingFret: 1, Fingering: []string{"x", "3", "2", "0", "0", "0"}},
	{Name: "D", StartingFret: 1, Fingering: []string{"x", "x", "0", "2", "3", "2"}},
	{Name: "Dm", StartingFret: 1, Fingering: []string{"x", "x", "0", "2", "3", "1"}},
	{Name: "D7", StartingFret: 1, Fingering: []string{"x", "x", "0", "2", "1", "2"}},
	{Name: "E", StartingFret: 1, Fingering: []string{"0", "2", "2", "1", "0", "0"}},
	{Name: "Em", StartingFret: 1, Fingering: []string{"0", "2", "2", "0", "0", "0"}},
	{Name: "E7", StartingFret: 1, Fingering: []string{"0", "2", "0", "1", "0", "0"}},
	{Name: "F", StartingFret: 1, Fingering: []string{"1", "3", "3", "2", "1", "1"}},
	{Name: "G", StartingFret: 1, Fingering: []string{"3", "2", "0", "0", "0", "3"}},
	{Name: "G7", StartingFret: 1, Fingering: []string{"3", "2", "0", "0", "0", "1"}},
	{Name: "A", StartingFret: 1, Fingering: []string{"x", "0", "2", "2", "2", "0"}},
	{Name: "Am", StartingFret: 1, Fingering: []string{"x", "0", "2", "2", "1", "0"}},
	{Name: "A7", StartingFret: 1, Fingering: []string{"x", "0", "2", "0", "2", "0"}},
	{Name: "Am7", StartingFret: 1, Fingering: []string{"x", "0", "2", "0", "1", "0"}},
	{Name: "B7", StartingFret: 1, Fingering: []string{"x", "2", "1", "2", "0", "2"}},
	{Name: "Bm", StartingFret: 2, Fingering: []string{"x", "1", "3", "3", "2", "1"}},
	{Name: "Bb", StartingFret: 1, Fingering: []string{"x", "1", "3", "3", "3", "1"}},
	{Name: "A5", StartingFret: 1, Fingering: []string{"x", "0", "2", "x", "x", "x"}},
	{Name: "E5", StartingFret: 1, Fingering: []string{"0", "2", "x", "x", "x", "x"}},
}
