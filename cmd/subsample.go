package cmd

import (
	"github.com/Schaudge/vsearch/internal/subsample"
	"github.com/spf13/cobra"
)

// subsampleCmd represents the subsample command
var subsampleCmd = &cobra.Command{
	Use:   "subsample",
	Short: "Draw a uniform random subsample of reads, without replacement",
	Long: `Selects an exact number (or percentage) of reads from a FASTA/FASTQ file,
uniformly at random and without replacement.

With --sizein each record's ;size=N annotation counts as N reads, so an
abundance-annotated record can be split between the selected and discarded
outputs, each side relabeled with the reads it received`,
	Run: subsample.Execute,
}

// set flags
func init() {
	rootCmd.AddCommand(subsampleCmd)

	subsampleCmd.Flags().StringP("in", "i", "", "Input file of reads to sample <FASTA/FASTQ>")
	subsampleCmd.Flags().String("fastaout", "", "FASTA output file for sampled reads")
	subsampleCmd.Flags().String("fastqout", "", "FASTQ output file for sampled reads")
	subsampleCmd.Flags().String("fastaout-discarded", "", "FASTA output file for unsampled reads")
	subsampleCmd.Flags().String("fastqout-discarded", "", "FASTQ output file for unsampled reads")
	subsampleCmd.Flags().Uint64P("sample-size", "n", 0, "Number of reads to sample")
	subsampleCmd.Flags().Float64P("sample-pct", "p", 0, "Percentage of reads to sample, in (0,100]")
	subsampleCmd.Flags().BoolP("sizein", "s", false, "Weight records by their ;size=N abundance annotation")
	subsampleCmd.Flags().Int64("seed", 0, "Random seed for reproducible sampling (0 seeds from the clock)")
	subsampleCmd.Flags().BoolP("quiet", "q", false, "Suppress progress and summary output")
}
