package cmd

import (
	"fmt"
	"io"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/dataprep/chrom"
	"v.io/x/lib/cmdline"
)

func newCmdChroms() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "chroms",
		Short: "Expand a chromosome shortcut or list",
		Long: `Prints one chromosome name per line. The argument is either a shortcut
(autosomes, autosomesX, autosomesXY), a single chromosome name, or a
comma-separated list of names.`,
		ArgsName: "spec",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("chroms takes one argument, but got %v", argv)
		}
		return chroms(env.Stdout, argv[0])
	})
	return cmd
}

// expandChroms expands a chromosome flag value, warning when a token looks
// like a misspelled shortcut.
func expandChroms(value string) []string {
	spec := chrom.ParseSpec(value)
	if !spec.IsList() {
		if s, ok := chrom.Suggest(value); ok {
			log.Printf("%q is not a chromosome shortcut; using it as a name (did you mean %q?)", value, s)
		}
	}
	return chrom.Expand(spec)
}

func chroms(w io.Writer, value string) error {
	for _, name := range expandChroms(value) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
