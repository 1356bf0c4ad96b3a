package cmd

import (
	"github.com/Schaudge/vsearch/internal/chars"
	"github.com/spf13/cobra"
)

// charsCmd represents the chars command
var charsCmd = &cobra.Command{
	Use:   "chars",
	Short: "Summarize sequence and quality characters of a FASTQ file",
	Long: `Counts every sequence and quality character of a FASTQ file, tracks the
longest homopolymer run per base and constant quality tails, and guesses the
file's quality encoding (phred+33 or phred+64) and platform convention`,
	Run: chars.Execute,
}

// set flags
func init() {
	rootCmd.AddCommand(charsCmd)

	charsCmd.Flags().StringP("in", "i", "", "Input file of reads to inspect <FASTQ>")
	charsCmd.Flags().IntP("tail", "t", 4, "Minimum length of a constant quality tail to count")
}
