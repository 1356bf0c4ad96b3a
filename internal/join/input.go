package join

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Schaudge/vsearch/config"
	"github.com/Schaudge/vsearch/internal/db"
	"github.com/shenwei356/xopen"
)

var stderr = log.New(os.Stderr, "", 0)

// Execute is the entry point of the join command. Called via cobra
func Execute(cmd *cobra.Command, args []string) {
	in, _ := cmd.Flags().GetString("in")
	reverse, _ := cmd.Flags().GetString("reverse")
	fastaout, _ := cmd.Flags().GetString("fastaout")
	fastqout, _ := cmd.Flags().GetString("fastqout")
	padGap, _ := cmd.Flags().GetString("padgap")
	padQual, _ := cmd.Flags().GetString("padgapq")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if in == "" {
		stderr.Fatal("no forward reads file specified with --in")
	}
	if reverse == "" {
		stderr.Fatal("no reverse reads file specified with --reverse")
	}
	if fastaout == "" && fastqout == "" {
		stderr.Fatal("no output files specified")
	}

	cfg := config.New()
	if !cmd.Flags().Changed("padgap") {
		padGap = cfg.JoinPadGap
	}
	if !cmd.Flags().Changed("padgapq") {
		padQual = cfg.JoinPadGapQ
	}

	var fastaFh, fastqFh *xopen.Writer
	var err error
	if fastaout != "" {
		if fastaFh, err = xopen.Wopen(fastaout); err != nil {
			stderr.Fatalf("unable to open %s for writing: %v", fastaout, err)
		}
		defer fastaFh.Close()
	}
	if fastqout != "" {
		if fastqFh, err = xopen.Wopen(fastqout); err != nil {
			stderr.Fatalf("unable to open %s for writing: %v", fastqout, err)
		}
		defer fastqFh.Close()
	}

	pad := Pad{Gap: []byte(padGap), Qual: []byte(padQual)}
	total, err := Run(in, reverse, pad, func(j Joined) error {
		if fastaFh != nil {
			if err := db.WriteFasta(fastaFh, j.Name, j.Seq, cfg.FastaWidth); err != nil {
				return err
			}
		}
		if fastqFh != nil {
			if err := db.WriteFastq(fastqFh, j.Name, j.Seq, j.Qual); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if !quiet {
		stderr.Printf("%d pairs joined\n", total)
	}
}
