package chars

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Schaudge/vsearch/config"
)

var stderr = log.New(os.Stderr, "", 0)

// Execute is the entry point of the chars command. Called via cobra
func Execute(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		stderr.Fatal("no input file specified with --in")
	}

	tailLen, _ := cmd.Flags().GetInt("tail")
	if !cmd.Flags().Changed("tail") {
		tailLen = config.New().FastqTail
	}

	p, err := Scan(in, tailLen)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	p.Report(os.Stderr)
}
