// Package join concatenates paired forward/reverse reads into single
// sequences, reverse-complementing the reverse read and bridging the
// two with a fixed pad
package join

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// complement maps IUPAC nucleotide codes to their complements,
// preserving case. Unknown characters complement to N
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	pairs := map[byte]byte{
		'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
		'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D', 'N': 'N',
	}
	for b, c := range pairs {
		complement[b] = c
		complement[b+'a'-'A'] = c + 'a' - 'A'
	}
}

// RevComp returns the reverse complement of a nucleotide sequence
func RevComp(sequence []byte) []byte {
	out := make([]byte, len(sequence))
	for i, b := range sequence {
		out[len(sequence)-1-i] = complement[b]
	}
	return out
}

// reverse returns a reversed copy of a quality string
func reverse(quality []byte) []byte {
	out := make([]byte, len(quality))
	for i, b := range quality {
		out[len(quality)-1-i] = b
	}
	return out
}

// Pad bridges the forward read and the reverse-complemented reverse
// read. Gap and Qual must be the same length
type Pad struct {
	Gap  []byte
	Qual []byte
}

// Pair joins one forward/reverse read pair: forward, then the pad,
// then the reverse complement of the reverse read. The joined quality
// keeps the forward scores, the pad scores, and the reversed reverse
// scores
func Pair(fwdSeq, fwdQual, revSeq, revQual []byte, pad Pad) (joinedSeq, joinedQual []byte) {
	joinedSeq = make([]byte, 0, len(fwdSeq)+len(pad.Gap)+len(revSeq))
	joinedSeq = append(joinedSeq, fwdSeq...)
	joinedSeq = append(joinedSeq, pad.Gap...)
	joinedSeq = append(joinedSeq, RevComp(revSeq)...)

	joinedQual = make([]byte, 0, len(fwdQual)+len(pad.Qual)+len(revQual))
	joinedQual = append(joinedQual, fwdQual...)
	joinedQual = append(joinedQual, pad.Qual...)
	joinedQual = append(joinedQual, reverse(revQual)...)

	return joinedSeq, joinedQual
}

// Joined is one merged read handed to the caller's writer
type Joined struct {
	Name []byte
	Seq  []byte
	Qual []byte
}

// Run streams the two input files in lockstep, joining each pair and
// handing it to emit. Returns the number of pairs joined. The inputs
// must hold the same number of reads
func Run(fwdPath, revPath string, pad Pad, emit func(Joined) error) (uint64, error) {
	if len(pad.Gap) != len(pad.Qual) {
		return 0, errors.New("pad gap and pad quality strings differ in length")
	}

	fwd, err := fastx.NewReader(seq.DNAredundant, fwdPath, fastx.DefaultIDRegexp)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", fwdPath)
	}
	defer fwd.Close()

	rev, err := fastx.NewReader(seq.DNAredundant, revPath, fastx.DefaultIDRegexp)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open %s", revPath)
	}
	defer rev.Close()

	var total uint64
	for {
		fwdRec, err := fwd.Read()
		if err == io.EOF {
			if _, err := rev.Read(); err != io.EOF {
				return total, errors.New("more reverse reads than forward reads")
			}
			return total, nil
		}
		if err != nil {
			return total, errors.Wrapf(err, "failed to read %s", fwdPath)
		}

		revRec, err := rev.Read()
		if err == io.EOF {
			return total, errors.New("more forward reads than reverse reads")
		}
		if err != nil {
			return total, errors.Wrapf(err, "failed to read %s", revPath)
		}

		joinedSeq, joinedQual := Pair(fwdRec.Seq.Seq, fwdRec.Seq.Qual, revRec.Seq.Seq, revRec.Seq.Qual, pad)
		if err := emit(Joined{Name: fwdRec.Name, Seq: joinedSeq, Qual: joinedQual}); err != nil {
			return total, err
		}
		total++
	}
}
