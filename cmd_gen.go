package main

import (
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"
)

var (
	GenCmd = &cobra.Command{
		Use:   "gen [file.hmlcc]",
		Short: "generate the printable html document for the composition",
		Args:  cobra.ExactArgs(1),
		RunE:  genCmd,
	}

	notationFlag    bool
	tablatureFlag   bool
	diagramsFlag    bool
	pageSizeFlag    string
	orientationFlag string
	optionsFileFlag string
	fingeringsFlag  string
	outFlag         string
)

func addPrintFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(
		&notationFlag, "notation", true,
		"include the staff notation row")
	cmd.PersistentFlags().BoolVar(
		&tablatureFlag, "tablature", true,
		"include the tablature row")
	cmd.PersistentFlags().BoolVar(
		&diagramsFlag, "diagrams", true,
		"include the chord reference diagrams on the first page")
	cmd.PersistentFlags().StringVar(
		&pageSizeFlag, "page-size", "letter",
		"physical page size (letter or a4)")
	cmd.PersistentFlags().StringVar(
		&orientationFlag, "orientation", "portrait",
		"page orientation (portrait or landscape)")
	cmd.PersistentFlags().StringVar(
		&optionsFileFlag, "options", "",
		"yaml print options file (flags set explicitly take precedence)")
	cmd.PersistentFlags().StringVar(
		&fingeringsFlag, "fingerings", "",
		"json fingering table file (default: built-in table)")
	cmd.PersistentFlags().StringVar(
		&outFlag, "out", "",
		"output filepath (default: derived from the input name)")
}

func init() {
	addPrintFlags(GenCmd)
	RootCmd.AddCommand(GenCmd)
}

// resolvePrintOptions merges the options file (when given) with any flags
// the user set explicitly on the command line.
func resolvePrintOptions(cmd *cobra.Command) (PrintOptions, error) {
	opts := defaultPrintOptions()
	if optionsFileFlag != "" {
		var err error
		opts, err = loadPrintOptions(optionsFileFlag)
		if err != nil {
			return opts, err
		}
	}
	if cmd.Flags().Changed("notation") {
		opts.IncludeNotation = notationFlag
	}
	if cmd.Flags().Changed("tablature") {
		opts.IncludeTablature = tablatureFlag
	}
	if cmd.Flags().Changed("diagrams") {
		opts.IncludeChordDiagrams = diagramsFlag
	}
	if cmd.Flags().Changed("page-size") {
		opts.PageSize = pageSizeFlag
	}
	if cmd.Flags().Changed("orientation") {
		opts.Orientation = orientationFlag
	}
	return opts, opts.validate()
}

func resolveFingeringTable() (*FingeringTable, error) {
	if fingeringsFlag == "" {
		return DefaultFingeringTable(), nil
	}
	return LoadFingeringTable(fingeringsFlag)
}

func outputPath(input, defaultExt string) string {
	if outFlag != "" {
		return outFlag
	}
	return strings.TrimSuffix(input, ".hmlcc") + defaultExt
}

func genCmd(cmd *cobra.Command, args []string) error {
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
	html, err := RenderSongHTML(song, fings, opts)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(outputPath(args[0], ".html"), []byte(html), 0666)
}
