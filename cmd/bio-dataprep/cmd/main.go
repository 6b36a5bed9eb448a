package cmd

import (
	"strings"

	"github.com/grailbio/base/log"
	"v.io/x/lib/cmdline"
)

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	registerS3()
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-dataprep",
			Short:    "Helpers for preparing genomics training datasets",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdChroms(),
				newCmdTasks(),
				newCmdLabels(),
				newCmdTile(),
			},
		})
}
