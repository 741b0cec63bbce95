// Package cmd implements the gcodecheck command tree.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cncforge/gcode"
	"github.com/cncforge/gcode/config"
)

var (
	cfgFile       string
	verbose       bool
	logJSON       bool
	letters       string
	caseSensitive bool
	floatBits     int
	noChecksum    bool
	noLineNumbers bool
	lenientComm   bool
	rejectUnknown bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gcodecheck",
	Short: "Validate and inspect G-code programs",
	Long: `gcodecheck streams G-code programs through a validating tokenizer.

It verifies trailing *nnn checksums, N-word line number monotonicity,
comment and string syntax and resource limits without interpreting any
of the codes. Parser options can be loaded from a TOML or YAML file and
overridden with flags.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		opts := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		if logJSON {
			h = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			h = slog.NewTextHandler(os.Stderr, opts)
		}
		logger = slog.New(h).With("run_id", uuid.NewString())
	},
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "parser options file (TOML or YAML)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&logJSON, "log-json", false, "log as JSON")
	pf.StringVar(&letters, "letters", "", "accepted address letters (default: full alphabet)")
	pf.BoolVar(&caseSensitive, "case-sensitive", false, "distinguish letter case (with --letters)")
	pf.IntVar(&floatBits, "float-bits", 0, "numeric precision, 32 or 64")
	pf.BoolVar(&noChecksum, "no-checksum", false, "skip *nnn checksum validation")
	pf.BoolVar(&noLineNumbers, "no-line-numbers", false, "skip N word monotonicity checks")
	pf.BoolVar(&lenientComm, "lenient-comments", false, "silently close unclosed (comments")
	pf.BoolVar(&rejectUnknown, "reject-unknown", false, "fail on unknown characters between words")
}

// buildOptions assembles parser options from the configuration file and
// the flag overrides.
func buildOptions() (gcode.Options, error) {
	o := gcode.DefaultOptions()
	if cfgFile != "" {
		var err error
		if o, err = config.Load(cfgFile); err != nil {
			return gcode.Options{}, fmt.Errorf("load config: %w", err)
		}
	}
	if letters != "" {
		ac, err := gcode.NewAddressConfig([]byte(letters), caseSensitive)
		if err != nil {
			return gcode.Options{}, fmt.Errorf("--letters: %w", err)
		}
		o.Addresses = ac
	}
	if floatBits != 0 {
		o.FloatBits = floatBits
	}
	if noChecksum {
		o.ValidateChecksum = false
	}
	if noLineNumbers {
		o.ValidateLineNumbers = false
	}
	if lenientComm {
		o.StrictComments = false
	}
	if rejectUnknown {
		o.IgnoreUnknownCharacters = false
	}
	return o, nil
}
