package cmd

import (
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/dataprep/tasks"
	"v.io/x/lib/cmdline"
)

func newCmdTasks() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "tasks",
		Short:    "Build a task index and print it",
		Long:     "Fails if a task name is repeated. Otherwise prints position and name, one task per line.",
		ArgsName: "name...",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		return printTasks(env.Stdout, argv)
	})
	return cmd
}

func printTasks(w io.Writer, names []string) error {
	idx, err := tasks.New(names)
	if err != nil {
		return err
	}
	for i, name := range idx.Names() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, name); err != nil {
			return err
		}
	}
	return nil
}
