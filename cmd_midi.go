package main

import (
	"github.com/spf13/cobra"
)

var MidiCmd = &cobra.Command{
	Use:   "midi [file.hmlcc]",
	Short: "export the composition's chord track as a standard midi file",
	Args:  cobra.ExactArgs(1),
	RunE:  midiCmd,
}

func init() {
	MidiCmd.PersistentFlags().StringVar(
		&outFlag, "out", "",
		"output filepath (default: derived from the input name)")
	RootCmd.AddCommand(MidiCmd)
}

func midiCmd(cmd *cobra.Command, args []string) error {
	song, err := LoadSong(args[0])
	if err != nil {
		return err
	}
	return WriteSongSMF(song, outputPath(args[0], ".mid"))
}
