package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cncforge/gcode"
)

var statsCmd = &cobra.Command{
	Use:   "stats FILE...",
	Short: "Print per-file stream statistics",
	Long: `Stats streams each file and prints line, block, word and byte counts.
Files are processed in constant memory regardless of size.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "FILE\tLINES\tBLOCKS\tWORDS\tBYTES\t")
	failed := 0
	for _, path := range args {
		p, err := gcode.NewParserFile(path, gcode.WithOptions(opts))
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			continue
		}
		words := int64(0)
		for {
			b, err := p.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				break
			}
			words += int64(len(b.Words))
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", path, p.Line(), p.Blocks(), words, p.BytesRead())
		p.Close()
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
