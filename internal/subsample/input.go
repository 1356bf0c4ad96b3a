package subsample

import (
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/Schaudge/vsearch/config"
	"github.com/Schaudge/vsearch/internal/db"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// flags are the parsed subsample command inputs
type flags struct {
	in    string
	paths db.PartitionPaths
	opts  Options
	seed  int64
	quiet bool
}

// parseFlags gathers the input path, output paths and sampling options
// from the cobra command
func parseFlags(cmd *cobra.Command) *flags {
	fs := &flags{}

	fs.in, _ = cmd.Flags().GetString("in")
	fs.paths.FastaSelected, _ = cmd.Flags().GetString("fastaout")
	fs.paths.FastqSelected, _ = cmd.Flags().GetString("fastqout")
	fs.paths.FastaDiscarded, _ = cmd.Flags().GetString("fastaout-discarded")
	fs.paths.FastqDiscarded, _ = cmd.Flags().GetString("fastqout-discarded")
	fs.opts.Weighted, _ = cmd.Flags().GetBool("sizein")
	fs.opts.Count, _ = cmd.Flags().GetUint64("sample-size")
	fs.opts.Percent, _ = cmd.Flags().GetFloat64("sample-pct")
	fs.seed, _ = cmd.Flags().GetInt64("seed")
	fs.quiet, _ = cmd.Flags().GetBool("quiet")

	fs.opts.ByPercent = cmd.Flags().Changed("sample-pct")

	return fs
}

// Execute is the entry point of the subsample command: load the
// collection, draw the sample, partition the records to the output
// files. Called via cobra
func Execute(cmd *cobra.Command, args []string) {
	fs := parseFlags(cmd)

	if fs.in == "" {
		stderr.Fatal("no input file specified with --in")
	}
	if fs.opts.ByPercent == cmd.Flags().Changed("sample-size") {
		stderr.Fatal("specify exactly one of --sample-size and --sample-pct")
	}
	if fs.opts.ByPercent && (fs.opts.Percent <= 0 || fs.opts.Percent > 100) {
		stderr.Fatal("--sample-pct must be in (0,100]")
	}
	if fs.paths == (db.PartitionPaths{}) {
		stderr.Fatal("no output files specified")
	}

	d, err := db.Read(fs.in)
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if fs.paths.NeedsQuality() && !d.IsFastq() {
		stderr.Fatal("cannot write FASTQ output with a FASTA input file, lacking quality scores")
	}

	m, err := NewMassModel(d, fs.opts.Weighted)
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	if !fs.quiet {
		stderr.Printf("Got %d reads from %d amplicons\n", m.Total(), d.Size())
	}

	if fs.seed != 0 {
		fs.opts.Rng = NewRand(fs.seed)
	}

	var bar *pb.ProgressBar
	if !fs.quiet {
		bar = pb.Full.Start64(int64(m.Total()))
		fs.opts.Progress = func(visited uint64) { bar.SetCurrent(int64(visited)) }
	}

	cfg := config.New()
	writer, err := db.NewPartitionWriter(d, fs.paths, fs.opts.Weighted, cfg.FastaWidth)
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	defer writer.Close()

	result, err := Run(d, writer, fs.opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		stderr.Fatalf("%v", err)
	}

	if !fs.quiet {
		stderr.Printf("Subsampled %d reads from %d amplicons\n", result.Sampled, result.Selected)
	}
}
