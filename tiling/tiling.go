// Package tiling computes sliding-window tile start positions over a
// sequence, optionally keeping tiles clear of a protected region at the
// sequence center.
package tiling

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Opts controls Positions.
type Opts struct {
	// Protect enables exclusion of tiles overlapping a region of
	// ProtectCenter bases at the center of the sequence.
	Protect bool
	// ProtectCenter is the length of the protected region. It may exceed
	// the sequence length.
	ProtectCenter int
	// Distances requests the signed offset of each tile start from the
	// start of the protected region. It requires Protect.
	Distances bool
}

// DefaultOpts tiles the whole sequence with no protected region.
var DefaultOpts = Opts{}

// Tiles holds tile start positions in ascending order. Distances is
// positionally aligned with Positions and is nil unless requested.
type Tiles struct {
	Positions []int
	Distances []int
}

// Len returns the number of tiles.
func (t Tiles) Len() int { return len(t.Positions) }

// ProtectedRegion returns the 0-based half-open region [start, end) of
// length protectCenter centered in a sequence of length seqLen. When the
// parities of seqLen and protectCenter differ, the region is shifted left.
// start is negative when protectCenter > seqLen.
func ProtectedRegion(seqLen, protectCenter int) (start, end int) {
	start = floorDiv2(seqLen - protectCenter)
	return start, start + protectCenter
}

// Positions returns the start positions of tiles of length tileLen placed
// every stride bases from position 0 in a sequence of length seqLen. Every
// returned tile lies entirely within the sequence. With opts.Protect, tiles
// overlapping the protected region are dropped.
//
// A tile longer than the sequence, or a protected region that covers every
// candidate, yields no tiles and no error. Non-positive stride or tileLen,
// negative seqLen or ProtectCenter, and Distances without Protect are
// rejected with errors.Invalid.
func Positions(seqLen, tileLen, stride int, opts Opts) (Tiles, error) {
	if err := validate(seqLen, tileLen, stride, opts); err != nil {
		return Tiles{}, err
	}
	maxPos := seqLen - tileLen + 1

	// A tile starting at x overlaps the protected region iff
	// x < protectEnd && x+tileLen > protectStart; x+tileLen <= seqLen.
	var protectStart, protectEnd int
	if opts.Protect {
		protectStart, protectEnd = ProtectedRegion(seqLen, opts.ProtectCenter)
	}

	// Candidates are i*stride for i < n; i*stride <= maxPos-1 for all such i.
	var t Tiles
	n := 0
	if maxPos > 0 {
		n = (maxPos-1)/stride + 1
		t.Positions = make([]int, 0, n)
	}
	for i := 0; i < n; i++ {
		x := i * stride
		if opts.Protect && x < protectEnd && x+tileLen > protectStart {
			continue
		}
		t.Positions = append(t.Positions, x)
	}
	if opts.Distances {
		t.Distances = make([]int, len(t.Positions))
		for i, x := range t.Positions {
			t.Distances[i] = x - protectStart
		}
	}
	return t, nil
}

func validate(seqLen, tileLen, stride int, opts Opts) error {
	switch {
	case stride <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: stride must be positive, got %d", stride))
	case tileLen <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: tile length must be positive, got %d", tileLen))
	case seqLen < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: negative sequence length %d", seqLen))
	case opts.Protect && opts.ProtectCenter < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("tiling: negative protected length %d", opts.ProtectCenter))
	case opts.Distances && !opts.Protect:
		return errors.E(errors.Invalid, "tiling: distances require a protected center")
	}
	return nil
}

// floorDiv2 returns floor(x/2) for any sign of x.
func floorDiv2(x int) int {
	return x >> 1
}
