package cmd

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/cncforge/gcode"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print every block and word of a program",
	Long: `Tokens batch-collects a program and prints one row per block with its
source line number and canonical words. Quoted string values may hold
arbitrary text; columns are aligned by rendered cell width.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	r, err := gcode.ParseFile(args[0], gcode.WithOptions(opts))
	if err != nil {
		return err
	}
	logger.Info("collected", "file", args[0], "blocks", len(r.Blocks), "words", r.WordCount())

	// column width over all rendered words
	col := 0
	for _, b := range r.Blocks {
		for _, w := range b.Words {
			if n := cellWidth(w.String()); n > col {
				col = n
			}
		}
	}
	out := cmd.OutOrStdout()
	for _, b := range r.Blocks {
		fmt.Fprintf(out, "%6d |", b.Line)
		for _, w := range b.Words {
			s := w.String()
			fmt.Fprintf(out, " %s%s", s, strings.Repeat(" ", col-cellWidth(s)))
		}
		fmt.Fprintln(out)
	}
	return nil
}

// cellWidth computes the width of s in text cells, supposing rendering
// with a UTF-8 locale and a monospaced font. String values may carry
// East Asian wide runes.
func cellWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		i += sz
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
