package main

import (
	"regexp"
	"strings"
)

// Accidental marks how a pitch name is spelled.
type Accidental int

const (
	AccidentalNone Accidental = iota
	AccidentalSharp
	AccidentalFlat
)

// Pitch is one chord tone voiced in a concrete octave.
type Pitch struct {
	Letter     byte // 'A' through 'G'
	Accidental Accidental
	Octave     int
}

// Name returns the spelled pitch name without the octave, e.g. "F#".
func (p Pitch) Name() string {
	switch p.Accidental {
	case AccidentalSharp:
		return string(p.Letter) + "#"
	case AccidentalFlat:
		return string(p.Letter) + "b"
	}
	return string(p.Letter)
}

// referenceOctave is the octave chord roots are voiced in.
const referenceOctave = 4

var (
	annotationRe = regexp.MustCompile(`(?i)\((easy|barre|alt)\)`)
	rootRe       = regexp.MustCompile(`^([A-G])(#|b)?`)
	powerChordRe = regexp.MustCompile(`^([A-G](?:#|b)?)5$`)
)

// normalizeChordName runs the cleanup pipeline over a free-form chord name:
// parenthetical annotations are stripped, " major"/" minor" suffixes are
// rewritten, then all remaining whitespace is removed.
func normalizeChordName(name string) string {
	name = annotationRe.ReplaceAllString(name, "")
	trimmed := strings.TrimSpace(name)
	if strings.HasSuffix(trimmed, " major") {
		trimmed = strings.TrimSuffix(trimmed, " major")
	} else if strings.HasSuffix(trimmed, " minor") {
		trimmed = strings.TrimSuffix(trimmed, " minor") + "m"
	}
	return strings.Join(strings.Fields(trimmed), "")
}

// perfect fifth of every root, both sharp and flat spellings, used by the
// power chord shortcut
var perfectFifths = map[string]string{
	"A": "E", "A#": "F", "Bb": "F", "B": "F#",
	"C": "G", "C#": "G#", "Db": "Ab", "D": "A",
	"D#": "A#", "Eb": "Bb", "E": "B", "F": "C",
	"F#": "C#", "Gb": "Db", "G": "D", "G#": "D#", "Ab": "Eb",
}

// resolveChord maps a free-form chord name to at most 4 chord tones
// (root, third, fifth, optional seventh) voiced from the reference octave.
// It never fails: unresolvable names degrade to a bare root note or, when
// no root can be extracted at all, to an empty list.
func resolveChord(name string) []Pitch {
	cleaned := normalizeChordName(name)
	if cleaned == "" || cleaned == "-" {
		return nil
	}

	// power chords bypass the quality lookup entirely
	if m := powerChordRe.FindStringSubmatch(cleaned); m != nil {
		root, ok := parsePitchName(m[1])
		if !ok {
			return nil
		}
		fifthName, ok := perfectFifths[m[1]]
		if !ok {
			return nil
		}
		fifth, _ := parsePitchName(fifthName)
		if fifth.semitone() < root.semitone() {
			fifth.Octave++
		}
		return []Pitch{root, fifth}
	}

	if tones := resolveChordTones(cleaned); len(tones) > 0 {
		if len(tones) > 4 {
			tones = tones[:4]
		}
		return tones
	}

	// no quality match, fall back to the bare root as an implied major
	m := rootRe.FindString(cleaned)
	if m == "" {
		return nil
	}
	if tones := resolveChordTones(m); len(tones) > 0 {
		if len(tones) > 4 {
			tones = tones[:4]
		}
		return tones
	}
	root, ok := parsePitchName(m)
	if !ok {
		return nil
	}
	return []Pitch{root}
}

// chord quality to semitone intervals from the root; first 3-4 tones only,
// extensions beyond the seventh are truncated by the caller
var chordIntervals = map[string][]int{
	"":     {0, 4, 7},
	"m":    {0, 3, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"dim7": {0, 3, 6, 9},
	"aug":  {0, 4, 8},
	"sus":  {0, 5, 7},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
	"6":    {0, 4, 7, 9},
	"m6":   {0, 3, 7, 9},
	"7":    {0, 4, 7, 10},
	"9":    {0, 4, 7, 10},
	"maj7": {0, 4, 7, 11},
	"maj9": {0, 4, 7, 11},
	"M7":   {0, 4, 7, 11},
	"m7":   {0, 3, 7, 10},
	"min7": {0, 3, 7, 10},
	"m9":   {0, 3, 7, 10},
	"m7b5": {0, 3, 6, 10},
	"add9": {0, 4, 7, 14},
}

// resolveChordTones is the narrow chord-theory lookup: full name in,
// spelled pitch list out, nil when the quality is unknown.
func resolveChordTones(name string) []Pitch {
	m := rootRe.FindString(name)
	if m == "" {
		return nil
	}
	root, ok := parsePitchName(m)
	if !ok {
		return nil
	}
	quality := name[len(m):]
	intervals, ok := chordIntervals[quality]
	if !ok {
		return nil
	}
	tones := make([]Pitch, 0, len(intervals))
	for _, iv := range intervals {
		tones = append(tones, spellInterval(root, iv))
	}
	return tones
}

const noteLetters = "CDEFGAB"

// semitone offsets of the natural letters from C
var naturalSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// diatonic letter steps spanned by each supported interval
var intervalLetterSteps = map[int]int{
	0: 0, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4, 7: 4,
	8: 4, 9: 5, 10: 6, 11: 6, 14: 8,
}

func parsePitchName(name string) (Pitch, bool) {
	if len(name) == 0 {
		return Pitch{}, false
	}
	p := Pitch{Letter: name[0], Octave: referenceOctave}
	if _, ok := naturalSemitones[p.Letter]; !ok {
		return Pitch{}, false
	}
	if len(name) > 1 {
		switch name[1] {
		case '#':
			p.Accidental = AccidentalSharp
		case 'b':
			p.Accidental = AccidentalFlat
		default:
			return Pitch{}, false
		}
	}
	return p, true
}

func (p Pitch) accidentalOffset() int {
	switch p.Accidental {
	case AccidentalSharp:
		return 1
	case AccidentalFlat:
		return -1
	}
	return 0
}

// semitone returns the absolute semitone index of the pitch
// (C of octave 0 = 0).
func (p Pitch) semitone() int {
	return p.Octave*12 + naturalSemitones[p.Letter] + p.accidentalOffset()
}

// letterIndex is the C-based diatonic index of the letter within an octave.
func letterIndex(letter byte) int {
	return strings.IndexByte(noteLetters, letter)
}

// spellInterval derives the correctly spelled pitch the given number of
// semitones above the root, keeping the conventional letter for the
// interval (a fifth above Eb is Bb, not A#).
func spellInterval(root Pitch, semitones int) Pitch {
	steps := intervalLetterSteps[semitones]
	rootIdx := letterIndex(root.Letter)
	targetIdx := (rootIdx + steps) % 7
	octave := root.Octave + (rootIdx+steps)/7

	target := Pitch{Letter: noteLetters[targetIdx], Octave: octave}
	delta := root.semitone() + semitones - target.semitone()
	switch delta {
	case 1:
		target.Accidental = AccidentalSharp
	case -1:
		target.Accidental = AccidentalFlat
	case 0:
	default:
		// doubly altered spelling, re-spell chromatically from the root
		target = chromaticSpelling(root.semitone() + semitones)
	}
	return target
}

// chromaticSpelling falls back to a sharp-preferring spelling for pitches
// whose conventional letter would need a double accidental.
func chromaticSpelling(semitone int) Pitch {
	octave := semitone / 12
	within := semitone % 12
	for _, letter := range []byte("CDEFGAB") {
		if naturalSemitones[letter] == within {
			return Pitch{Letter: letter, Octave: octave}
		}
		if naturalSemitones[letter]+1 == within {
			return Pitch{Letter: letter, Accidental: AccidentalSharp, Octave: octave}
		}
	}
	return Pitch{Letter: 'C', Octave: octave}
}
