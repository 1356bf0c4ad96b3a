package db

import (
	"fmt"
	"io"
	"regexp"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

var sizeAnnotationRe = regexp.MustCompile(`;?size=\d+;?`)

// WriteFasta prints one FASTA record, wrapping the sequence at width
// characters per line. width <= 0 puts the sequence on a single line
func WriteFasta(w io.Writer, name, sequence []byte, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", name); err != nil {
		return err
	}

	if width <= 0 || width >= len(sequence) {
		_, err := fmt.Fprintf(w, "%s\n", sequence)
		return err
	}

	for i := 0; i < len(sequence); i += width {
		end := i + width
		if end > len(sequence) {
			end = len(sequence)
		}
		if _, err := fmt.Fprintf(w, "%s\n", sequence[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteFastq prints one four-line FASTQ record
func WriteFastq(w io.Writer, name, sequence, quality []byte) error {
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", name, sequence, quality)
	return err
}

// RelabelSize replaces any size annotation in a header with the given
// abundance, appending one if the header had none
func RelabelSize(name []byte, size uint64) []byte {
	stripped := sizeAnnotationRe.ReplaceAll(name, []byte(";"))
	for len(stripped) > 0 && stripped[len(stripped)-1] == ';' {
		stripped = stripped[:len(stripped)-1]
	}
	return []byte(fmt.Sprintf("%s;size=%d", stripped, size))
}

// PartitionWriter routes selected and discarded records to up to four
// output files: FASTA and FASTQ for each stream. It implements the
// sampler's Emitter interface
type PartitionWriter struct {
	db        *DB
	relabel   bool
	lineWidth int

	fastaSelected  *xopen.Writer
	fastqSelected  *xopen.Writer
	fastaDiscarded *xopen.Writer
	fastqDiscarded *xopen.Writer
}

// PartitionPaths names the output files of a partition. Empty paths
// leave the corresponding stream closed
type PartitionPaths struct {
	FastaSelected  string
	FastqSelected  string
	FastaDiscarded string
	FastqDiscarded string
}

// NeedsQuality reports whether any requested stream is FASTQ
func (p PartitionPaths) NeedsQuality() bool {
	return p.FastqSelected != "" || p.FastqDiscarded != ""
}

// NewPartitionWriter opens the requested output files. relabel rewrites
// each emitted header's size annotation with the partitioned count
func NewPartitionWriter(d *DB, paths PartitionPaths, relabel bool, lineWidth int) (*PartitionWriter, error) {
	w := &PartitionWriter{db: d, relabel: relabel, lineWidth: lineWidth}

	var err error
	open := func(path string) *xopen.Writer {
		if path == "" || err != nil {
			return nil
		}
		var fh *xopen.Writer
		if fh, err = xopen.Wopen(path); err != nil {
			err = errors.Wrapf(err, "unable to open output file %s", path)
		}
		return fh
	}

	w.fastaSelected = open(paths.FastaSelected)
	w.fastqSelected = open(paths.FastqSelected)
	w.fastaDiscarded = open(paths.FastaDiscarded)
	w.fastqDiscarded = open(paths.FastqDiscarded)
	if err != nil {
		w.Close()
		return nil, err
	}

	return w, nil
}

// EmitSelected writes record i to the selected stream(s)
func (w *PartitionWriter) EmitSelected(i int, count uint64, serial int) error {
	return w.emit(i, count, w.fastaSelected, w.fastqSelected)
}

// EmitDiscarded writes record i to the discarded stream(s)
func (w *PartitionWriter) EmitDiscarded(i int, count uint64, serial int) error {
	return w.emit(i, count, w.fastaDiscarded, w.fastqDiscarded)
}

func (w *PartitionWriter) emit(i int, count uint64, fasta, fastq *xopen.Writer) error {
	record := w.db.Record(i)

	name := record.Name
	if w.relabel {
		name = RelabelSize(name, count)
	}

	if fasta != nil {
		if err := WriteFasta(fasta, name, record.Seq.Seq, w.lineWidth); err != nil {
			return errors.Wrap(err, "failed writing FASTA output")
		}
	}
	if fastq != nil {
		if err := WriteFastq(fastq, name, record.Seq.Seq, record.Seq.Qual); err != nil {
			return errors.Wrap(err, "failed writing FASTQ output")
		}
	}
	return nil
}

// Close flushes and closes every open stream
func (w *PartitionWriter) Close() {
	for _, fh := range []*xopen.Writer{w.fastaSelected, w.fastqSelected, w.fastaDiscarded, w.fastqDiscarded} {
		if fh != nil {
			fh.Close()
		}
	}
}
