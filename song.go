package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"
)

const (
	beatsPerBar = 4
	barsPerRow  = 4
	rowsPerPage = 4
	barsPerPage = barsPerRow * rowsPerPage
)

// PageData is the persisted unit of layout: 16 bars organized as 4 rows
// of 4 bars, each bar holding one lyric line and 4 beat chord names
// (empty string = no chord on that beat).
type PageData struct {
	BarLyrics     []string   `json:"barLyrics"`
	BarBeatChords [][]string `json:"barBeatChords"`
}

// Song is the composition record stored in a .hmlcc file. Pages print in
// insertion order.
type Song struct {
	Title string      `json:"title"`
	Pages []*PageData `json:"pages"`
}

// NewPageData returns an empty well-formed page (all lyrics and chords "").
func NewPageData() *PageData {
	p := &PageData{
		BarLyrics:     make([]string, barsPerPage),
		BarBeatChords: make([][]string, barsPerPage),
	}
	for i := range p.BarBeatChords {
		p.BarBeatChords[i] = make([]string, beatsPerBar)
	}
	return p
}

// Validate fails fast on malformed page shapes so the renderers can assume
// fixed-length arrays.
func (p *PageData) Validate() error {
	if len(p.BarLyrics) != barsPerPage {
		return fmt.Errorf("page must have %v bar lyrics, have %v",
			barsPerPage, len(p.BarLyrics))
	}
	if len(p.BarBeatChords) != barsPerPage {
		return fmt.Errorf("page must have %v bars of beat chords, have %v",
			barsPerPage, len(p.BarBeatChords))
	}
	for i, beats := range p.BarBeatChords {
		if len(beats) != beatsPerBar {
			return fmt.Errorf("bar %v must have %v beats, have %v",
				i, beatsPerBar, len(beats))
		}
	}
	return nil
}

func (s *Song) Validate() error {
	for i, p := range s.Pages {
		if p == nil {
			return fmt.Errorf("page %v is missing", i)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("page %v: %v", i, err)
		}
	}
	return nil
}

// RowBeatChords flattens the 4 bars of a row into one 16-beat sequence,
// the shape consumed by the row-spanning renderers.
func (p *PageData) RowBeatChords(row int) []string {
	out := make([]string, 0, barsPerRow*beatsPerBar)
	for bar := row * barsPerRow; bar < (row+1)*barsPerRow; bar++ {
		out = append(out, p.BarBeatChords[bar]...)
	}
	return out
}

// RowLyrics returns the 4 bar lyrics of a row.
func (p *PageData) RowLyrics(row int) []string {
	return p.BarLyrics[row*barsPerRow : (row+1)*barsPerRow]
}

// DistinctChords collects the deduplicated non-empty chord names used
// across all pages of the song, in first-use order.
func (s *Song) DistinctChords() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.Pages {
		for _, beats := range p.BarBeatChords {
			for _, name := range beats {
				name = strings.TrimSpace(name)
				if name == "" || name == "-" || seen[name] {
					continue
				}
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// LoadSong reads and validates a .hmlcc composition file.
func LoadSong(filepath string) (*Song, error) {
	content, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	var song Song
	if err := json.Unmarshal(content, &song); err != nil {
		return nil, fmt.Errorf("could not parse %v: %v", filepath, err)
	}
	if err := song.Validate(); err != nil {
		return nil, fmt.Errorf("malformed song in %v: %v", filepath, err)
	}
	return &song, nil
}

// Save writes the song back out as .hmlcc JSON.
func (s *Song) Save(filepath string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filepath, append(content, '\n'), 0666)
}

// sortedCopy is a convenience for stable test output and chord listings.
func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}
