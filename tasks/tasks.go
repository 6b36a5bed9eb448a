// Package tasks builds the registry of prediction tasks for a dataset. A
// task is one label column; the registry is an ordered index of task names
// with no attached data.
package tasks

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/dataprep/labels"
)

// Index is an ordered, duplicate-free list of task names. The zero value
// is an empty index.
type Index struct {
	names []string
	pos   map[string]int
}

// New builds an Index over names, preserving their order. Names are used
// verbatim: no trimming or case folding. It returns an errors.Invalid
// error if any name occurs more than once.
func New(names []string) (*Index, error) {
	idx := &Index{
		names: append([]string(nil), names...),
		pos:   make(map[string]int, len(names)),
	}
	for i, name := range names {
		if prev, ok := idx.pos[name]; ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("duplicate task name %q at positions %d and %d", name, prev, i))
		}
		idx.pos[name] = i
	}
	return idx, nil
}

// MustNew is like New, but panics if names contains duplicates. It is
// meant for task lists fixed in code or configuration.
func MustNew(names []string) *Index {
	idx, err := New(names)
	if err != nil {
		log.Panicf("tasks.MustNew: %v", err)
	}
	return idx
}

// FromLabels builds an Index from the column names of a label table.
func FromLabels(t *labels.Table) (*Index, error) {
	if t == nil {
		return New(nil)
	}
	return New(t.ColumnNames())
}

// Len returns the number of tasks.
func (idx *Index) Len() int { return len(idx.names) }

// Names returns a copy of the task names in index order.
func (idx *Index) Names() []string {
	return append([]string(nil), idx.names...)
}

// Lookup returns the position of the named task.
func (idx *Index) Lookup(name string) (int, bool) {
	i, ok := idx.pos[name]
	return i, ok
}
