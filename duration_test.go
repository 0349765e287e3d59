package main

import (
	"reflect"
	"testing"
)

func TestInferDurations(t *testing.T) {
	cases := []struct {
		name  string
		beats []string
		spans []beatSpan
	}{
		{
			"whole note",
			[]string{"G", "", "", ""},
			[]beatSpan{{startBeat: 0, beats: 4, chord: "G"}},
		},
		{
			"dotted half then quarter",
			[]string{"G", "", "", "C"},
			[]beatSpan{
				{startBeat: 0, beats: 3, chord: "G"},
				{startBeat: 3, beats: 1, chord: "C"},
			},
		},
		{
			"leading ghost",
			[]string{"", "G", "", ""},
			[]beatSpan{
				{startBeat: 0, beats: 1, ghost: true},
				{startBeat: 1, beats: 3, chord: "G"},
			},
		},
		{
			"all ghosts, never merged",
			[]string{"", "", "", ""},
			[]beatSpan{
				{startBeat: 0, beats: 1, ghost: true},
				{startBeat: 1, beats: 1, ghost: true},
				{startBeat: 2, beats: 1, ghost: true},
				{startBeat: 3, beats: 1, ghost: true},
			},
		},
		{
			"four quarters",
			[]string{"G", "C", "Em", "D"},
			[]beatSpan{
				{startBeat: 0, beats: 1, chord: "G"},
				{startBeat: 1, beats: 1, chord: "C"},
				{startBeat: 2, beats: 1, chord: "Em"},
				{startBeat: 3, beats: 1, chord: "D"},
			},
		},
		{
			"whitespace beats count as empty",
			[]string{" G ", " ", "", "  "},
			[]beatSpan{{startBeat: 0, beats: 4, chord: "G"}},
		},
	}
	for _, tc := range cases {
		got := inferDurations(tc.beats)
		if !reflect.DeepEqual(got, tc.spans) {
			t.Errorf("%v: inferDurations(%v) = %v, want %v",
				tc.name, tc.beats, got, tc.spans)
		}
	}
}

func TestInferDurationsCoversAllBeats(t *testing.T) {
	rows := [][]string{
		{"G", "", "", ""},
		{"", "", "C", ""},
		{"A", "B", "", "", "C", "", "", "", "", "D", "", ""},
		{"", "", "", "", "", "", "", ""},
	}
	for _, beats := range rows {
		spans := inferDurations(beats)
		next := 0
		for _, s := range spans {
			if s.startBeat != next {
				t.Fatalf("beats %v: span starts at %v, want %v", beats, s.startBeat, next)
			}
			if s.beats < 1 || s.beats > beatsPerBar {
				t.Fatalf("beats %v: span length %v out of range", beats, s.beats)
			}
			next += s.beats
		}
		if next != len(beats) {
			t.Errorf("beats %v: spans cover %v beats, want %v", beats, next, len(beats))
		}
	}
}

func TestBeatSpanValue(t *testing.T) {
	cases := map[int]noteValue{
		1: quarterNote,
		2: halfNote,
		3: dottedHalfNote,
		4: wholeNote,
	}
	for beats, want := range cases {
		if got := (beatSpan{beats: beats}).value(); got != want {
			t.Errorf("beatSpan{beats: %v}.value() = %v, want %v", beats, got, want)
		}
	}
}
