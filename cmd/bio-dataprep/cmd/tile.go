package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dataprep/reference"
	"github.com/grailbio/dataprep/tiling"
	"github.com/grailbio/dataprep/util"
	"v.io/x/lib/cmdline"
)

type tileOpts struct {
	tileLen       int
	stride        int
	protectCenter int
	distances     bool
	chroms        string
	seqLen        int
	out           string
}

var defaultTileOpts = tileOpts{
	tileLen:       1000,
	stride:        1000,
	protectCenter: -1,
	chroms:        "autosomesXY",
	seqLen:        -1,
}

func newCmdTile() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "tile",
		Short: "Write tile intervals over reference sequences",
		Long: `Writes one line per tile: chrom, start, end (0-based half-open, BED
compatible), plus the distance from the protected region with -distances.

With -seq-len, a single sequence of that length named "seq" is tiled, no
reference path is taken, and -chroms must be left at its default.
Otherwise the reference path is a FASTA file (optionally gzipped), a .fai
index, or a BAM file whose header lists the sequences; the chromosomes
named by -chroms are tiled in that order.`,
		ArgsName: "[reference]",
	}
	opts := defaultTileOpts
	cmd.Flags.IntVar(&opts.tileLen, "tile-len", opts.tileLen, "Tile length")
	cmd.Flags.IntVar(&opts.stride, "stride", opts.stride, "Distance between consecutive tile starts")
	cmd.Flags.IntVar(&opts.protectCenter, "protect-center", opts.protectCenter,
		"Length of the central region that tiles must not overlap; negative disables protection")
	cmd.Flags.BoolVar(&opts.distances, "distances", opts.distances,
		"Add a column with each tile's offset from the protected region; requires -protect-center")
	cmd.Flags.StringVar(&opts.chroms, "chroms", opts.chroms, "Chromosome shortcut, name, or comma-separated names")
	cmd.Flags.IntVar(&opts.seqLen, "seq-len", opts.seqLen, "Tile a single sequence of this length instead of a reference; excludes -chroms")
	cmd.Flags.StringVar(&opts.out, "out", opts.out, "Output path; stdout if empty. A .gz suffix compresses the output")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return tile(vcontext.Background(), env.Stdout, opts, argv)
	})
	return cmd
}

func (o tileOpts) tilingOpts() tiling.Opts {
	return tiling.Opts{
		Protect:       o.protectCenter >= 0,
		ProtectCenter: o.protectCenter,
		Distances:     o.distances,
	}
}

// sequences returns the sequences to tile.
func (o tileOpts) sequences(ctx context.Context, argv []string) ([]reference.Seq, error) {
	if o.seqLen >= 0 {
		if len(argv) != 0 {
			return nil, fmt.Errorf("tile takes no reference with -seq-len, but got %v", argv)
		}
		if o.chroms != defaultTileOpts.chroms {
			return nil, fmt.Errorf("tile: -chroms=%s cannot be combined with -seq-len", o.chroms)
		}
		return []reference.Seq{{Name: "seq", Length: o.seqLen}}, nil
	}
	if len(argv) != 1 {
		return nil, fmt.Errorf("tile takes one reference path, but got %v", argv)
	}
	seqs, err := reference.Lengths(ctx, argv[0])
	if err != nil {
		return nil, err
	}
	return reference.Select(seqs, expandChroms(o.chroms))
}

func tile(ctx context.Context, stdout io.Writer, opts tileOpts, argv []string) error {
	seqs, err := opts.sequences(ctx, argv)
	if err != nil {
		return err
	}
	// Tiles are written one sequence at a time so memory stays bounded by
	// the largest sequence.
	var n int
	write := func(w io.Writer) error {
		for _, s := range seqs {
			ivs, err := tiling.Reference(s.Name, s.Length, opts.tileLen, opts.stride, opts.tilingOpts())
			if err != nil {
				return err
			}
			log.Debug.Printf("tile: %s: %d tiles", s.Name, len(ivs))
			if err := tiling.WriteTSV(w, ivs, opts.distances); err != nil {
				return err
			}
			n += len(ivs)
		}
		return nil
	}
	if opts.out == "" {
		return write(stdout)
	}
	if err = util.WritePath(ctx, opts.out, write); err == nil {
		log.Printf("tile: wrote %d tiles over %d sequences to %s", n, len(seqs), opts.out)
	}
	return err
}
