package main

import (
	"fmt"
	"strings"
	"testing"
)

func rowGeo(t *testing.T) *rowGeometry {
	t.Helper()
	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		t.Fatal(err)
	}
	return geo
}

func emptyRow() []string {
	return make([]string, barsPerRow*beatsPerBar)
}

func TestDrawStaffRowEmptyRow(t *testing.T) {
	geo := rowGeo(t)
	svg := renderStaffRowSVG(geo, emptyRow())

	if got := strings.Count(svg, "<ellipse"); got != 0 {
		t.Errorf("empty row drew %v note heads, want 0", got)
	}
	// 5 staff lines plus 5 barlines (4 leading + 1 trailing)
	if got := strings.Count(svg, "<line"); got != 10 {
		t.Errorf("empty row drew %v lines, want 10", got)
	}
	// time signature is still present
	if !strings.Contains(svg, ">4<") {
		t.Error("empty row is missing the time signature")
	}
}

func TestDrawStaffRowChordCluster(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0] = "G"
	beats[1] = "-" // keeps G a quarter note
	svg := renderStaffRowSVG(geo, beats)

	// G resolves to 3 tones, each one head
	if got := strings.Count(svg, "<ellipse"); got != 3 {
		t.Errorf("G drew %v note heads, want 3", got)
	}
	// first head sits on the beat center
	want := fmt.Sprintf(`cx="%.2f"`, geo.beatCenter(0, 0))
	if !strings.Contains(svg, want) {
		t.Errorf("no note head at the beat center, want %v in output", want)
	}
	// quarter note heads are filled and carry a stem
	if !strings.Contains(svg, `fill="black"`) {
		t.Error("quarter note heads should be filled")
	}
	if got := strings.Count(svg, "<line"); got != 11 {
		t.Errorf("drew %v lines, want 10 structural plus 1 stem", got)
	}
}

func TestDrawStaffRowWholeNoteHasNoStem(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0] = "G" // absorbs the 3 empty beats after it, a whole note
	svgWhole := renderStaffRowSVG(geo, beats)

	beats[1] = "Em" // all tones on the staff, no ledger lines
	svgSplit := renderStaffRowSVG(geo, beats)

	// the whole note render has exactly the structural lines, the split
	// render adds one stem per sounding chord
	if got := strings.Count(svgWhole, "<line"); got != 10 {
		t.Errorf("whole note render drew %v lines, want 10", got)
	}
	if got := strings.Count(svgSplit, "<line"); got != 12 {
		t.Errorf("quarter+dotted-half render drew %v lines, want 12", got)
	}
}

func TestDrawStaffRowAccidental(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0] = "F#m"
	svg := renderStaffRowSVG(geo, beats)
	if !strings.Contains(svg, ">#<") {
		t.Error("F#m render has no sharp glyph")
	}

	beats[0] = "Eb"
	svg = renderStaffRowSVG(geo, beats)
	if !strings.Contains(svg, ">b<") {
		t.Error("Eb render has no flat glyph")
	}
}

func TestDrawStaffRowUnresolvableChord(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0] = "-"
	svg := renderStaffRowSVG(geo, beats)
	if got := strings.Count(svg, "<ellipse"); got != 0 {
		t.Errorf("explicit rest drew %v note heads, want 0", got)
	}
}

func TestRenderStaffRowSVGDeterministic(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0], beats[4], beats[8] = "G", "Am", "D7"
	if renderStaffRowSVG(geo, beats) != renderStaffRowSVG(geo, beats) {
		t.Error("identical input produced different markup")
	}
}

func TestDiatonicIndex(t *testing.T) {
	e4, _ := parsePitchName("E")
	if got := diatonicIndex(e4); got != bottomLineDiatonic {
		t.Errorf("diatonicIndex(E4) = %v, want bottom line %v", got, bottomLineDiatonic)
	}
	c4, _ := parsePitchName("C")
	if diatonicIndex(c4) >= bottomLineDiatonic {
		t.Error("C4 should sit below the bottom staff line")
	}
}
