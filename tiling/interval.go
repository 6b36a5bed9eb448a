package tiling

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// Interval is one tile on a named reference sequence, as a 0-based
// half-open range [Start, End).
type Interval struct {
	Chrom      string
	Start, End int
	// Distance is Start minus the start of the protected region. It is
	// meaningful only when distances were requested.
	Distance int
}

// Reference tiles the sequence chrom of length seqLen, see Positions, and
// returns the tiles as intervals.
func Reference(chrom string, seqLen, tileLen, stride int, opts Opts) ([]Interval, error) {
	t, err := Positions(seqLen, tileLen, stride, opts)
	if err != nil {
		return nil, err
	}
	ivs := make([]Interval, t.Len())
	for i, pos := range t.Positions {
		ivs[i] = Interval{Chrom: chrom, Start: pos, End: pos + tileLen}
		if t.Distances != nil {
			ivs[i].Distance = t.Distances[i]
		}
	}
	return ivs, nil
}

// WriteTSV writes one line per interval: chrom, start, end, and, if
// distances is set, the distance column. Coordinates are 0-based half-open,
// so the output is valid BED.
func WriteTSV(w io.Writer, ivs []Interval, distances bool) error {
	out := tsv.NewWriter(w)
	for _, iv := range ivs {
		out.WriteString(iv.Chrom)
		out.WriteInt64(int64(iv.Start))
		out.WriteInt64(int64(iv.End))
		if distances {
			out.WriteInt64(int64(iv.Distance))
		}
		if err := out.EndLine(); err != nil {
			return err
		}
	}
	return out.Flush()
}
