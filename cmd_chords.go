package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	ChordsCmd = &cobra.Command{
		Use:   "chords [file.hmlcc]",
		Short: "list the distinct chords used and their resolved tones",
		Args:  cobra.ExactArgs(1),
		RunE:  chordsCmd,
	}

	dumpFlag bool
)

func init() {
	ChordsCmd.PersistentFlags().BoolVar(
		&dumpFlag, "dump", false,
		"dump the parsed song structure")
	RootCmd.AddCommand(ChordsCmd)
}

func chordsCmd(cmd *cobra.Command, args []string) error {
	song, err := LoadSong(args[0])
	if err != nil {
		return err
	}
	if dumpFlag {
		spew.Dump(song)
		return nil
	}

	fings := DefaultFingeringTable()
	for _, name := range sortedCopy(song.DistinctChords()) {
		pitches := resolveChord(name)
		names := make([]string, 0, len(pitches))
		for _, p := range pitches {
			names = append(names, p.Name())
		}
		tones := strings.Join(names, " ")
		if tones == "" {
			tones = "(unresolved)"
		}
		fingering := ""
		if _, ok := fings.Lookup(name); !ok {
			fingering = "  (no fingering)"
		}
		fmt.Printf("%-8s %s%s\n", name, tones, fingering)
	}
	return nil
}
