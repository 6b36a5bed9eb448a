package labels

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/dataprep/util"
)

// ReadOpts controls ReadTSV.
type ReadOpts struct {
	// Categorical names columns to be read as Categorical regardless of
	// their contents.
	Categorical []string
}

// DefaultReadOpts is the default ReadOpts.
var DefaultReadOpts = ReadOpts{}

// ReadTSV reads a tab-separated label table. The first line is a header;
// the first column holds the row index and its header is ignored. Column
// kinds are inferred: columns named in opts.Categorical are Categorical,
// columns whose non-empty values all parse as numbers are Numeric, and the
// rest are String.
func ReadTSV(in io.Reader, opts ReadOpts) (*Table, error) {
	r := tsv.NewReader(in)
	r.Reader.FieldsPerRecord = -1
	r.Reader.LazyQuotes = true

	header, err := r.Reader.Read()
	if err == io.EOF {
		return nil, errors.E(errors.Invalid, "label table has no header")
	}
	if err != nil {
		return nil, errors.E(err, "read label header")
	}
	if len(header) == 0 {
		return nil, errors.E(errors.Invalid, "label table has an empty header")
	}
	t := &Table{Columns: make([]Column, len(header)-1)}
	for i, name := range header[1:] {
		t.Columns[i].Name = name
	}
	for line := 2; ; line++ {
		row, err := r.Reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("read label table line %d", line))
		}
		if len(row) != len(header) {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("label table line %d: got %d fields, want %d", line, len(row), len(header)))
		}
		t.Index = append(t.Index, row[0])
		for i := range t.Columns {
			t.Columns[i].Values = append(t.Columns[i].Values, row[i+1])
		}
	}

	categorical := make(map[string]bool, len(opts.Categorical))
	for _, name := range opts.Categorical {
		categorical[name] = true
	}
	for i := range t.Columns {
		c := &t.Columns[i]
		switch {
		case categorical[c.Name]:
			c.Kind = Categorical
			c.Levels = levels(c.Values)
		case isNumeric(c.Values):
			c.Kind = Numeric
		default:
			c.Kind = String
		}
		if log.At(log.Debug) {
			log.Debug.Printf("labels: column %q: %v", c.Name, c.Kind)
		}
	}
	return t, nil
}

// ReadTable reads a label table from path; see ReadTSV. Gzipped files are
// decompressed.
func ReadTable(ctx context.Context, path string, opts ReadOpts) (t *Table, err error) {
	err = util.ReadPath(ctx, path, func(r io.Reader) (err error) {
		t, err = ReadTSV(r, opts)
		return
	})
	if err != nil {
		return nil, errors.E(err, path)
	}
	return t, nil
}

// isNumeric reports whether every non-empty value parses as a float and
// at least one value is non-empty.
func isNumeric(values []string) bool {
	seen := false
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

func levels(values []string) []string {
	var (
		out  []string
		seen = map[string]bool{}
	)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
