package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "grade-report",
	Short: "Compute weighted course grades and write a sorted report",
	Long: "grade-report reads a student name directory and a course grade file,\n" +
		"computes each enrollment's final grade (3 tests at 20%, final exam at 40%)\n" +
		"and writes the results sorted by student id.",
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.Version = version
}
