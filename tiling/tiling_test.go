package tiling_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/dataprep/tiling"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func TestPositionsNoProtect(t *testing.T) {
	tiles, err := tiling.Positions(20, 5, 5, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, 5, 10, 15})
	expect.True(t, tiles.Distances == nil)

	tiles, err = tiling.Positions(20, 5, 3, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, 3, 6, 9, 12, 15})

	tiles, err = tiling.Positions(5, 5, 1, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0})
}

func TestPositionsProtect(t *testing.T) {
	tiles, err := tiling.Positions(20, 5, 1, tiling.Opts{Protect: true, ProtectCenter: 4})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, 1, 2, 3, 12, 13, 14, 15})

	tiles, err = tiling.Positions(20, 5, 1, tiling.Opts{Protect: true, ProtectCenter: 4, Distances: true})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, 1, 2, 3, 12, 13, 14, 15})
	expect.EQ(t, tiles.Distances, []int{-8, -7, -6, -5, 4, 5, 6, 7})
}

func TestPositionsProtectZero(t *testing.T) {
	// A zero-length protected region still drops tiles straddling the
	// center point.
	tiles, err := tiling.Positions(10, 3, 1, tiling.Opts{Protect: true})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, 1, 2, 5, 6, 7})
}

func TestProtectedRegion(t *testing.T) {
	tests := []struct {
		seqLen, protect int
		start, end      int
	}{
		{20, 4, 8, 12},
		{21, 4, 8, 12},
		{20, 5, 7, 12},
		{21, 5, 8, 13},
		{10, 0, 5, 5},
		{4, 10, -3, 7},
		{4, 9, -3, 6},
	}
	for _, test := range tests {
		start, end := tiling.ProtectedRegion(test.seqLen, test.protect)
		expect.EQ(t, start, test.start, test)
		expect.EQ(t, end, test.end, test)
	}
}

func TestPositionsEmpty(t *testing.T) {
	tiles, err := tiling.Positions(4, 5, 1, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)

	tiles, err = tiling.Positions(4, 5, 1, tiling.Opts{Protect: true, ProtectCenter: 2, Distances: true})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)
	expect.EQ(t, len(tiles.Distances), 0)

	tiles, err = tiling.Positions(0, 1, 1, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)

	// The protected region covers the whole sequence.
	tiles, err = tiling.Positions(20, 5, 1, tiling.Opts{Protect: true, ProtectCenter: 40})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)
}

func TestPositionsInvalid(t *testing.T) {
	tests := []struct {
		seqLen, tileLen, stride int
		opts                    tiling.Opts
	}{
		{20, 5, 0, tiling.DefaultOpts},
		{20, 5, -1, tiling.DefaultOpts},
		{20, 0, 1, tiling.DefaultOpts},
		{20, -2, 1, tiling.DefaultOpts},
		{-1, 5, 1, tiling.DefaultOpts},
		{20, 5, 1, tiling.Opts{Protect: true, ProtectCenter: -1}},
		{20, 5, 1, tiling.Opts{Distances: true}},
	}
	for _, test := range tests {
		_, err := tiling.Positions(test.seqLen, test.tileLen, test.stride, test.opts)
		require.Error(t, err, "%+v", test)
		expect.True(t, errors.Is(errors.Invalid, err), test)
	}
}

func TestPositionsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 2000; iter++ {
		seqLen := r.Intn(200)
		tileLen := r.Intn(50) + 1
		stride := r.Intn(20) + 1
		opts := tiling.Opts{
			Protect:       r.Intn(2) == 0,
			ProtectCenter: r.Intn(60),
		}
		opts.Distances = opts.Protect && r.Intn(2) == 0
		tiles, err := tiling.Positions(seqLen, tileLen, stride, opts)
		assert.NoError(t, err)

		maxPos := seqLen - tileLen + 1
		protectStart, protectEnd := tiling.ProtectedRegion(seqLen, opts.ProtectCenter)
		var want []int
		for x := 0; x < maxPos; x += stride {
			overlaps := x < protectEnd && x+tileLen > protectStart
			if opts.Protect && overlaps {
				continue
			}
			want = append(want, x)
		}
		assert.EQ(t, tiles.Len(), len(want), seqLen, tileLen, stride, opts)
		for i, p := range tiles.Positions {
			expect.EQ(t, p, want[i])
			expect.True(t, p >= 0 && p+tileLen <= seqLen)
			expect.EQ(t, p%stride, 0)
			if i > 0 {
				expect.True(t, p > tiles.Positions[i-1])
			}
		}
		if opts.Distances {
			assert.EQ(t, len(tiles.Distances), tiles.Len())
			for i, d := range tiles.Distances {
				expect.EQ(t, d, tiles.Positions[i]-protectStart)
			}
		} else {
			expect.True(t, tiles.Distances == nil)
		}
	}
}

const maxInt = int(^uint(0) >> 1)

func TestPositionsNearMaxInt(t *testing.T) {
	tiles, err := tiling.Positions(maxInt, 1, maxInt/2+1, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0, maxInt/2 + 1})

	tiles, err = tiling.Positions(maxInt, maxInt, 1, tiling.DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0})

	tiles, err = tiling.Positions(maxInt, 1, maxInt, tiling.Opts{Protect: true, ProtectCenter: 2, Distances: true})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Positions, []int{0})
	expect.EQ(t, tiles.Distances, []int{-(maxInt/2 - 1)})

	// Protected region far wider than the sequence.
	tiles, err = tiling.Positions(10, maxInt, 1, tiling.Opts{Protect: true, ProtectCenter: maxInt})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)
	tiles, err = tiling.Positions(10, 1, 1, tiling.Opts{Protect: true, ProtectCenter: maxInt})
	assert.NoError(t, err)
	expect.EQ(t, tiles.Len(), 0)
}

func TestReference(t *testing.T) {
	ivs, err := tiling.Reference("chr2", 20, 5, 1, tiling.Opts{Protect: true, ProtectCenter: 4, Distances: true})
	assert.NoError(t, err)
	assert.EQ(t, len(ivs), 8)
	expect.EQ(t, ivs[0], tiling.Interval{Chrom: "chr2", Start: 0, End: 5, Distance: -8})
	expect.EQ(t, ivs[4], tiling.Interval{Chrom: "chr2", Start: 12, End: 17, Distance: 4})

	_, err = tiling.Reference("chr2", 20, 5, 0, tiling.DefaultOpts)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestWriteTSV(t *testing.T) {
	ivs := []tiling.Interval{
		{Chrom: "chr1", Start: 0, End: 5, Distance: -3},
		{Chrom: "chr1", Start: 8, End: 13, Distance: 5},
	}
	var buf bytes.Buffer
	assert.NoError(t, tiling.WriteTSV(&buf, ivs, false))
	expect.EQ(t, buf.String(), "chr1\t0\t5\nchr1\t8\t13\n")

	buf.Reset()
	assert.NoError(t, tiling.WriteTSV(&buf, ivs, true))
	expect.EQ(t, buf.String(), "chr1\t0\t5\t-3\nchr1\t8\t13\t5\n")
}
