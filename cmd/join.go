package cmd

import (
	"github.com/Schaudge/vsearch/internal/join"
	"github.com/spf13/cobra"
)

// joinCmd represents the join command
var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Join forward and reverse reads into single sequences",
	Long: `Concatenates each forward read with the reverse complement of its mate,
bridged by a fixed pad sequence. The two input files are read in lockstep
and must hold the same number of reads`,
	Run: join.Execute,
}

// set flags
func init() {
	rootCmd.AddCommand(joinCmd)

	joinCmd.Flags().StringP("in", "i", "", "Forward reads file <FASTQ>")
	joinCmd.Flags().StringP("reverse", "r", "", "Reverse reads file <FASTQ>")
	joinCmd.Flags().String("fastaout", "", "FASTA output file for joined reads")
	joinCmd.Flags().String("fastqout", "", "FASTQ output file for joined reads")
	joinCmd.Flags().String("padgap", "", "Pad sequence between the joined reads")
	joinCmd.Flags().String("padgapq", "", "Quality string covering the pad")
	joinCmd.Flags().BoolP("quiet", "q", false, "Suppress summary output")
}
