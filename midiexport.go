package main

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	gmNylonGuitar uint8 = 24
	chordVelocity uint8 = 96
	exportBPM           = 120
)

// midiKey converts a voiced pitch to its MIDI note number (C4 = 60).
func midiKey(p Pitch) uint8 {
	key := (p.Octave+1)*12 + naturalSemitones[p.Letter] + p.accidentalOffset()
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}

// WriteSongSMF exports the song's chord track as a standard MIDI file:
// each sounding chord becomes a block chord held for its inferred span,
// ghosts become rests. Beats without resolvable chords are silent, the
// same degradation the renderers apply.
func WriteSongSMF(song *Song, outPath string) error {
	if err := song.Validate(); err != nil {
		return err
	}

	ticks := smf.MetricTicks(960)
	quarter := ticks.Ticks4th()

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(song.Title))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(exportBPM))
	tr.Add(0, midi.ProgramChange(0, gmNylonGuitar))

	rest := uint32(0)
	for _, page := range song.Pages {
		for bar := 0; bar < barsPerPage; bar++ {
			for _, span := range inferDurations(page.BarBeatChords[bar]) {
				dur := uint32(span.beats) * quarter
				if span.ghost {
					rest += dur
					continue
				}
				pitches := resolveChord(span.chord)
				if len(pitches) == 0 {
					rest += dur
					continue
				}
				for i, p := range pitches {
					delta := uint32(0)
					if i == 0 {
						delta = rest
					}
					tr.Add(delta, midi.NoteOn(0, midiKey(p), chordVelocity))
				}
				for i, p := range pitches {
					delta := uint32(0)
					if i == 0 {
						delta = dur
					}
					tr.Add(delta, midi.NoteOff(0, midiKey(p)))
				}
				rest = 0
			}
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add chord track: %v", err)
	}
	return s.WriteFile(outPath)
}
