package main

import (
	"math"
	"testing"
)

const geomEps = 1e-9

func TestNewRowGeometryWidthSum(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		geo, err := newRowGeometry(rowWidth, n)
		if err != nil {
			t.Fatalf("newRowGeometry(%v, %v): %v", rowWidth, n, err)
		}
		sum := 0.0
		for i := 0; i < geo.measureCount(); i++ {
			sum += geo.measure(i).width
		}
		want := rowWidth - rowMargin + clefAllowance
		if math.Abs(sum-want) > geomEps {
			t.Errorf("n=%v: measure widths sum to %v, want %v", n, sum, want)
		}
		last := geo.measure(n - 1)
		if math.Abs(last.x+last.width-geo.renderedWidth()) > geomEps {
			t.Errorf("n=%v: last measure ends at %v, want rendered width %v",
				n, last.x+last.width, geo.renderedWidth())
		}
	}
}

func TestNewRowGeometryFirstMeasureWider(t *testing.T) {
	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		t.Fatal(err)
	}
	first := geo.measure(0)
	second := geo.measure(1)
	if math.Abs(first.width-second.width-clefAllowance) > geomEps {
		t.Errorf("first measure %v wide, second %v: difference is not the clef allowance",
			first.width, second.width)
	}
	if first.x != rowMargin {
		t.Errorf("first measure starts at %v, want %v", first.x, rowMargin)
	}
}

func TestBeatCenterSymmetry(t *testing.T) {
	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		t.Fatal(err)
	}
	for m := 0; m < geo.measureCount(); m++ {
		box := geo.measure(m)
		mid := box.x + box.width/2
		if math.Abs((geo.beatCenter(m, 0)+geo.beatCenter(m, 3))/2-mid) > geomEps {
			t.Errorf("measure %v: beats 0 and 3 not symmetric around the center", m)
		}
		for b := 0; b < beatsPerBar-1; b++ {
			if geo.beatCenter(m, b) >= geo.beatCenter(m, b+1) {
				t.Errorf("measure %v: beat centers not increasing at beat %v", m, b)
			}
		}
	}
}

func TestFlatBeatCenter(t *testing.T) {
	geo, err := newRowGeometry(rowWidth, barsPerRow)
	if err != nil {
		t.Fatal(err)
	}
	for flat := 0; flat < barsPerRow*beatsPerBar; flat++ {
		want := geo.beatCenter(flat/beatsPerBar, flat%beatsPerBar)
		if got := geo.flatBeatCenter(flat); got != want {
			t.Errorf("flatBeatCenter(%v) = %v, want %v", flat, got, want)
		}
	}
}

func TestNewRowGeometryErrors(t *testing.T) {
	cases := []struct {
		width float64
		count int
	}{
		{0, 4},
		{-10, 4},
		{rowWidth, 0},
		{rowWidth, -1},
		{rowMargin, 4}, // nothing left after the margin
	}
	for _, tc := range cases {
		if _, err := newRowGeometry(tc.width, tc.count); err == nil {
			t.Errorf("newRowGeometry(%v, %v): expected error", tc.width, tc.count)
		}
	}
}
