package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cncforge/gcode"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate G-code programs",
	Long: `Check streams each file through the tokenizer and reports the first
error together with its line number. The exit status is non-zero if any
file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	failed := 0
	for _, path := range args {
		if err := checkFile(cmd, path, opts); err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func checkFile(cmd *cobra.Command, path string, opts gcode.Options) error {
	p, err := gcode.NewParserFile(path, gcode.WithOptions(opts))
	if err != nil {
		return err
	}
	defer p.Close()
	words := int64(0)
	for {
		b, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("parse failed", "file", path, "line", p.Line(), "error", err)
			return err
		}
		words += int64(len(b.Words))
	}
	logger.Info("file ok",
		"file", path,
		"lines", p.Line(),
		"blocks", p.Blocks(),
		"words", words,
		"bytes", p.BytesRead())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d blocks, %d words)\n", path, p.Blocks(), words)
	return nil
}
