// Package fasta reads sequence lengths from FASTA files and their samtools
// .fai indexes. See http://www.htslib.org/doc/faidx.html.  Briefly, FASTA
// files consist of a number of named sequences that may be interrupted by
// newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Sequence names are the stretch of characters immediately after '>' up to
// the first space; '>chr1 A viral sequence' names 'chr1'.
//
// Sequence contents are never retained; only the layout needed for an index
// is kept.
package fasta
