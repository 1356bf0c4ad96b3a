package chars

import (
	"fmt"
	"io"
)

// Report prints the profile the way the classic quality-inspection
// tools do: read count, quality range, encoding guess, then per-letter
// and per-quality-character tables
func (p *Profile) Report(w io.Writer) {
	fmt.Fprintf(w, "Read %d sequences.\n", p.SeqCount)

	if p.SeqCount == 0 {
		return
	}

	qmin, qmax := p.QualRange()
	g := p.Guess()

	fmt.Fprintf(w, "Qmin %d, Qmax %d, Range %d\n", qmin, qmax, qmax-qmin+1)
	fmt.Fprintf(w, "Guess: -fastq_qmin %d -fastq_qmax %d -fastq_ascii %d\n", g.QMin, g.QMax, g.Offset)
	fmt.Fprintf(w, "Guess: %s\n", g.Variant)

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Letter          N   Freq MaxRun\n")
	fmt.Fprintf(w, "------ ---------- ------ ------\n")

	for c := 0; c < 256; c++ {
		if p.SeqChars[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "     %c %10d %5.1f%% %6d",
			c, p.SeqChars[c], 100.0*float64(p.SeqChars[c])/float64(p.TotalChars), p.MaxRun[c])
		if c == 'N' && p.QMinN <= p.QMaxN {
			if p.QMinN < p.QMaxN {
				fmt.Fprintf(w, "  Q=%c..%c", p.QMinN, p.QMaxN)
			} else {
				fmt.Fprintf(w, "  Q=%c", p.QMinN)
			}
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Char  ASCII    Freq       Tails\n")
	fmt.Fprintf(w, "----  -----  ------  ----------\n")

	for c := qmin; c <= qmax; c++ {
		if p.QualChars[c] == 0 {
			continue
		}
		fmt.Fprintf(w, " '%c'  %5d  %5.1f%%  %10d\n",
			c, c, 100.0*float64(p.QualChars[c])/float64(p.TotalChars), p.TailChars[c])
	}
}
