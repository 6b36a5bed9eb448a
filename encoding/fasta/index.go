package fasta

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// Index files consist of one tab-separated line per sequence in the associated
// FASTA file.  The format is: "<sequence name>\t<length>\t<byte
// offset>\t<bases per line>\t<bytes per line>".
// For example: "chr3\t12345\t9000\t80\t81".
var indexRegExp = regexp.MustCompile(`^(\S+)\t(\d+)\t(\d+)\t(\d+)\t(\d+)$`)

// IndexEntry is one line of a .fai index.
type IndexEntry struct {
	Name string
	// Length is the number of bases in the sequence.
	Length int64
	// Offset is the byte offset of the first base.
	Offset int64
	// LineBases and LineWidth are the bases and bytes (including the line
	// terminator) per full line.
	LineBases, LineWidth int64
}

// ReadIndex parses a .fai index, returning entries in file order.
func ReadIndex(in io.Reader) ([]IndexEntry, error) {
	var entries []IndexEntry
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		matches := indexRegExp.FindStringSubmatch(line)
		if len(matches) != 6 {
			return nil, errors.Errorf("invalid index line: %s", line)
		}
		ent := IndexEntry{Name: matches[1]}
		for i, dst := range []*int64{&ent.Length, &ent.Offset, &ent.LineBases, &ent.LineWidth} {
			v, err := strconv.ParseInt(matches[i+2], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid index line: %s", line)
			}
			*dst = v
		}
		entries = append(entries, ent)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA index")
	}
	return entries, nil
}

// ScanIndex reads FASTA data and computes its index entries, in order of
// appearance. An input with no sequence header is an error.
func ScanIndex(in io.Reader) (entries []IndexEntry, err error) {
	var (
		r       = bufio.NewReader(in)
		cur     *IndexEntry
		cumByte int64
		eof     bool
	)
	for !eof {
		fullLine, e := r.ReadBytes('\n')
		if e == io.EOF { // Process fullLine, then exit the loop
			eof = true
		} else if e != nil {
			return nil, errors.Wrap(e, "couldn't read FASTA data")
		}
		cumByte += int64(len(fullLine))
		line := bytes.TrimRight(fullLine, "\r\n")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			entries = append(entries, IndexEntry{
				Name:   strings.Split(string(line[1:]), " ")[0],
				Offset: cumByte,
			})
			cur = &entries[len(entries)-1]
			continue
		}
		if cur == nil {
			return nil, errors.New("malformed FASTA file: sequence data before first header")
		}
		if cur.LineWidth == 0 {
			cur.LineWidth = int64(len(fullLine))
			cur.LineBases = int64(len(line))
		}
		cur.Length += int64(len(line))
	}
	if len(entries) == 0 {
		return nil, errors.New("empty FASTA file")
	}
	return entries, nil
}

// GenerateIndex generates an index (*.fai) from FASTA.
//
// The index format is defined by "samtool faidx"
// (http://www.htslib.org/doc/faidx.html).
func GenerateIndex(out io.Writer, in io.Reader) error {
	entries, err := ScanIndex(in)
	if err != nil {
		return err
	}
	return WriteIndex(out, entries)
}

// WriteIndex writes entries in .fai format.
func WriteIndex(out io.Writer, entries []IndexEntry) error {
	w := tsv.NewWriter(out)
	for _, ent := range entries {
		w.WriteString(ent.Name)
		w.WriteInt64(ent.Length)
		w.WriteInt64(ent.Offset)
		w.WriteInt64(ent.LineBases)
		w.WriteInt64(ent.LineWidth)
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}
