package main

import "strings"

// noteValue is the visual note value a beat span maps to.
type noteValue int

const (
	quarterNote noteValue = iota
	halfNote
	dottedHalfNote
	wholeNote
)

// beatSpan is one timing unit within a 4-beat measure: either a sounding
// chord sustained over 1-4 beats, or a 1-beat ghost placeholder that
// reserves timing without producing visible marks.
type beatSpan struct {
	startBeat int
	beats     int
	ghost     bool
	chord     string
}

func (s beatSpan) value() noteValue {
	switch s.beats {
	case 2:
		return halfNote
	case 3:
		return dottedHalfNote
	case 4:
		return wholeNote
	}
	return quarterNote
}

// inferDurations scans a measure's beats left to right and assigns each
// sounding chord the run of empty beats that follows it, capped at the
// measure. Empty beats that don't follow a sounding chord become
// independent 1-beat ghosts; consecutive empties are never merged into
// longer rests. The result always covers all beats with no gaps and no
// overlaps.
func inferDurations(beatChords []string) []beatSpan {
	var spans []beatSpan
	for beat := 0; beat < len(beatChords); {
		chord := strings.TrimSpace(beatChords[beat])
		if chord == "" {
			spans = append(spans, beatSpan{startBeat: beat, beats: 1, ghost: true})
			beat++
			continue
		}

		emptyRun := 0
		for next := beat + 1; next < len(beatChords) && emptyRun < 3; next++ {
			if strings.TrimSpace(beatChords[next]) != "" {
				break
			}
			emptyRun++
		}
		spans = append(spans, beatSpan{
			startBeat: beat,
			beats:     emptyRun + 1,
			chord:     chord,
		})
		beat += emptyRun + 1
	}
	return spans
}
