// Package reference loads the names and lengths of reference sequences,
// which bound the tiles generated for each chromosome.
package reference

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/dataprep/encoding/fasta"
	"github.com/grailbio/dataprep/util"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// Seq is a named reference sequence.
type Seq struct {
	Name   string
	Length int
}

// Lengths returns the reference sequences described by path, in file
// order. The format is chosen by suffix: ".fai" is a samtools FASTA index,
// ".bam" is read for its header only, and anything else is scanned as
// (optionally gzipped) FASTA.
func Lengths(ctx context.Context, path string) (seqs []Seq, err error) {
	trimmed := strings.TrimSuffix(path, ".gz")
	err = util.ReadPath(ctx, path, func(r io.Reader) error {
		var (
			entries []fasta.IndexEntry
			err     error
		)
		switch {
		case strings.HasSuffix(trimmed, ".fai"):
			entries, err = fasta.ReadIndex(r)
		case strings.HasSuffix(path, ".bam"):
			seqs, err = bamLengths(r)
			return err
		default:
			entries, err = fasta.ScanIndex(r)
		}
		if err != nil {
			return err
		}
		seqs = make([]Seq, len(entries))
		for i, ent := range entries {
			seqs[i] = Seq{Name: ent.Name, Length: int(ent.Length)}
		}
		return nil
	})
	if err != nil {
		return nil, errors.E(err, "reference lengths", path)
	}
	log.Debug.Printf("reference: %s: %d sequences", path, len(seqs))
	return seqs, nil
}

func bamLengths(r io.Reader) ([]Seq, error) {
	br, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, err
	}
	seqs := FromHeader(br.Header())
	return seqs, br.Close()
}

// FromHeader returns the reference sequences of a SAM header.
func FromHeader(h *sam.Header) []Seq {
	refs := h.Refs()
	seqs := make([]Seq, len(refs))
	for i, ref := range refs {
		seqs[i] = Seq{Name: ref.Name(), Length: ref.Len()}
	}
	return seqs
}

// Select returns the sequences named by names, in the order of names. It
// returns an errors.NotExist error naming the first missing sequence.
func Select(seqs []Seq, names []string) ([]Seq, error) {
	byName := make(map[string]Seq, len(seqs))
	for _, s := range seqs {
		byName[s.Name] = s
	}
	out := make([]Seq, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, errors.E(errors.NotExist, fmt.Sprintf("sequence %q not in reference", name))
		}
		out = append(out, s)
	}
	return out, nil
}
