package main

import (
	"github.com/spf13/cobra"
)

var PdfCmd = &cobra.Command{
	Use:   "pdf [file.hmlcc]",
	Short: "render the composition directly to pdf",
	Args:  cobra.ExactArgs(1),
	RunE:  pdfCmd,
}

func init() {
	addPrintFlags(PdfCmd)
	RootCmd.AddCommand(PdfCmd)
}

func pdfCmd(cmd *cobra.Command, args []string) error {
	song, err := LoadSong(args[0])
	if err != nil {
		return err
	}
	opts, err := resolvePrintOptions(cmd)
	if err != nil {
		return err
	}
	fings, err := resolveFingeringTable()
	if err != nil {
		return err
	}
	return RenderSongPDF(song, fings, opts, outputPath(args[0], ".pdf"))
}
