// Package chars accumulates per-character statistics over a FASTQ file
// and guesses its quality encoding scheme
package chars

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// Profile tallies sequence and quality characters across a collection
// of reads
type Profile struct {
	// SeqChars counts each sequence character
	SeqChars [256]uint64

	// QualChars counts each quality character
	QualChars [256]uint64

	// TailChars counts quality characters that close a read with a
	// homopolymer tail of at least TailLen
	TailChars [256]uint64

	// MaxRun holds, per sequence character, the longest observed run
	// counted as repeats beyond the first occurrence
	MaxRun [256]int

	// TailLen is the minimum tail length worth counting
	TailLen int

	// TotalChars is the number of bases seen
	TotalChars uint64

	// SeqCount is the number of reads seen
	SeqCount uint64

	// QMinN and QMaxN bound the quality characters observed under N bases
	QMinN int
	QMaxN int
}

// NewProfile returns an empty profile. tailLen is the minimum quality
// tail length to count; reads shorter than it have no tail
func NewProfile(tailLen int) *Profile {
	return &Profile{TailLen: tailLen, QMinN: 255, QMaxN: 0}
}

// Add folds one read into the profile. Sequence characters are
// counted uppercased
func (p *Profile) Add(sequence, quality []byte) {
	sequence = bytes.ToUpper(sequence)

	p.SeqCount++
	p.TotalChars += uint64(len(sequence))

	runChar := -1
	run := 0

	for i := 0; i < len(sequence); i++ {
		pc := int(sequence[i])
		qc := int(quality[i])
		p.SeqChars[pc]++
		p.QualChars[qc]++

		if pc == 'N' {
			if qc < p.QMinN {
				p.QMinN = qc
			}
			if qc > p.QMaxN {
				p.QMaxN = qc
			}
		}

		if pc == runChar {
			run++
			if run > p.MaxRun[runChar] {
				p.MaxRun[runChar] = run
			}
		} else {
			runChar = pc
			run = 0
		}
	}

	if len(quality) >= p.TailLen && p.TailLen > 0 {
		tailChar := quality[len(quality)-1]
		tailLen := 1
		for i := len(quality) - 2; i >= 0 && quality[i] == tailChar; i-- {
			tailLen++
			if tailLen >= p.TailLen {
				break
			}
		}
		if tailLen >= p.TailLen {
			p.TailChars[tailChar]++
		}
	}
}

// QualRange is the observed span of quality characters
func (p *Profile) QualRange() (qmin, qmax int) {
	for c := 0; c <= 255; c++ {
		if p.QualChars[c] > 0 {
			qmin = c
			break
		}
	}
	for c := 255; c >= 0; c-- {
		if p.QualChars[c] > 0 {
			qmax = c
			break
		}
	}
	return qmin, qmax
}

// Guess is the inferred quality encoding of a file
type Guess struct {
	// Offset is the ASCII value of quality score zero: 33 or 64
	Offset int

	// QMin and QMax are the observed quality scores under the offset
	QMin int
	QMax int

	// Variant names the sequencing platform convention
	Variant string
}

// Guess infers the quality encoding from the observed character range.
// Low characters force the phred+33 interpretation; otherwise phred+64
// with the variant narrowed by the minimum
func (p *Profile) Guess() Guess {
	qmin, qmax := p.QualRange()

	g := Guess{Offset: 64}
	if qmin < 59 || qmax < 75 {
		g.Offset = 33
	}

	g.QMin = qmin - g.Offset
	g.QMax = qmax - g.Offset

	if g.Offset == 64 {
		switch {
		case qmin < 64:
			g.Variant = "Solexa format (phred+64)"
		case qmin < 66:
			g.Variant = "Illumina 1.3+ format (phred+64)"
		default:
			g.Variant = "Illumina 1.5+ format (phred+64)"
		}
	} else {
		if qmax > 73 {
			g.Variant = "Illumina 1.8+ format (phred+33)"
		} else {
			g.Variant = "Original Sanger format (phred+33)"
		}
	}

	return g
}

// Scan profiles every read of a FASTQ file
func Scan(path string, tailLen int) (*Profile, error) {
	reader, err := fastx.NewReader(seq.DNAredundant, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer reader.Close()

	p := NewProfile(tailLen)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if len(record.Seq.Qual) == 0 {
			return nil, errors.Errorf("%s is not a FASTQ file, lacking quality scores", path)
		}

		p.Add(record.Seq.Seq, record.Seq.Qual)
	}

	return p, nil
}
