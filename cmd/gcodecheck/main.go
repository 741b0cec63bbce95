package main

import (
	"os"

	"github.com/cncforge/gcode/cmd/gcodecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
