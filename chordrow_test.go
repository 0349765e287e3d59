package main

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		in       string
		maxChars int
		want     string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer lyric line", 10, "a longe..."},
		{"abcdef", 2, "a..."}, // floor of 4 chars
		{"abcd", 2, "abcd"},
		{"héllo wörld again", 10, "héllo w..."},
		{"ééé", 10, "ééé"},
	}
	for _, tc := range cases {
		if got := truncateWithEllipsis(tc.in, tc.maxChars); got != tc.want {
			t.Errorf("truncateWithEllipsis(%q, %v) = %q, want %q",
				tc.in, tc.maxChars, got, tc.want)
		}
	}
}

func TestDrawChordRow(t *testing.T) {
	geo := rowGeo(t)
	beats := emptyRow()
	beats[0] = "G"
	beats[6] = "Am"
	beats[9] = "-"
	lyrics := []string{"Verse one", "", "", ""}
	svg := renderChordRowSVG(geo, lyrics, beats)

	if got := strings.Count(svg, "<text"); got != 3 {
		t.Errorf("drew %v text elements, want 2 chord names and 1 lyric", got)
	}
	if !strings.Contains(svg, ">G<") || !strings.Contains(svg, ">Am<") {
		t.Error("chord names missing from output")
	}
	if strings.Contains(svg, ">-<") {
		t.Error("explicit rest marker should not be drawn")
	}
	if !strings.Contains(svg, ">Verse one<") {
		t.Error("lyric missing from output")
	}
	// chord names are bold, lyrics are not
	if got := strings.Count(svg, `font-weight="bold"`); got != 2 {
		t.Errorf("drew %v bold elements, want the 2 chord names", got)
	}
}

func TestDrawChordRowMultibyteLyric(t *testing.T) {
	geo := rowGeo(t)
	lyrics := []string{strings.Repeat("é", 40), "", "", ""}
	svg := renderChordRowSVG(geo, lyrics, emptyRow())

	if !utf8.ValidString(svg) {
		t.Fatal("overflowing multibyte lyric produced invalid UTF-8")
	}
	if !strings.Contains(svg, "...") {
		t.Error("overflowing lyric was not ellipsized")
	}
}

func TestDrawChordRowEmpty(t *testing.T) {
	geo := rowGeo(t)
	svg := renderChordRowSVG(geo, make([]string, barsPerRow), emptyRow())
	if strings.Contains(svg, "<text") {
		t.Error("empty row should draw nothing")
	}
}
