// Package db holds a sequence collection in memory: FASTA or FASTQ
// records with per-record abundance parsed from header annotations
package db

import (
	"io"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// size annotations look like "id;size=123" or "id size=123"
var sizeRe = regexp.MustCompile(`(?:^|[;\s])size=(\d+)`)

func init() {
	// records are stored as-is; validation would only slow loading
	seq.ValidateSeq = false
}

// DB is an ordered, randomly indexable, read-only sequence collection
type DB struct {
	records    []*fastx.Record
	abundances []int64
	fastq      bool
}

// Read loads every record of a FASTA/FASTQ file (plain or gzipped)
// into memory
func Read(path string) (*DB, error) {
	reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer reader.Close()

	d := &DB{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		d.records = append(d.records, record.Clone())
		d.abundances = append(d.abundances, ParseAbundance(record.Name))
		if len(record.Seq.Qual) > 0 {
			d.fastq = true
		}
	}

	return d, nil
}

// Size is the number of records in the collection
func (d *DB) Size() int {
	return len(d.records)
}

// Abundance is the size annotation of the ith record, 0 if it has none
func (d *DB) Abundance(i int) int64 {
	return d.abundances[i]
}

// Record is the ith record of the collection
func (d *DB) Record(i int) *fastx.Record {
	return d.records[i]
}

// IsFastq reports whether the collection carries quality scores
func (d *DB) IsFastq() bool {
	return d.fastq
}

// ParseAbundance extracts the size annotation from a record header.
// Returns 0 when the header has no annotation
func ParseAbundance(name []byte) int64 {
	m := sizeRe.FindSubmatch(name)
	if m == nil {
		return 0
	}

	ab, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil {
		return 0
	}
	return ab
}
