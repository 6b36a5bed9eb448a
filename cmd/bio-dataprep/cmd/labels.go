package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dataprep/labels"
	"github.com/grailbio/dataprep/tasks"
	"v.io/x/lib/cmdline"
)

func newCmdLabels() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "labels",
		Short: "Inspect a label table",
		Long: `Reads a tab-separated label table (header row, first column is the row
index) and prints each column's inferred kind, followed by whether the
table is a valid multiclass target. Tables whose column names repeat are
rejected.`,
		ArgsName: "path",
	}
	categorical := cmd.Flags.String("categorical", "", "Comma-separated columns to treat as categorical")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("labels takes one pathname argument, but got %v", argv)
		}
		opts := labels.DefaultReadOpts
		opts.Categorical = splitList(*categorical)
		return inspectLabels(vcontext.Background(), env.Stdout, argv[0], opts)
	})
	return cmd
}

func inspectLabels(ctx context.Context, w io.Writer, path string, opts labels.ReadOpts) error {
	table, err := labels.ReadTable(ctx, path, opts)
	if err != nil {
		return err
	}
	if _, err = tasks.FromLabels(table); err != nil {
		return err
	}
	for _, c := range table.Columns {
		if _, err = fmt.Fprintf(w, "%s\t%v\n", c.Name, c.Kind); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "rows\t%d\nmulticlass\t%v\n", table.NumRows(), labels.IsValidMulticlass(table))
	return err
}
