// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*
bio-dataprep exposes the dataset-preparation helpers on the command line:
chromosome shortcut expansion, task index construction, label table
validation, and tiling of reference sequences.

  bio-dataprep chroms autosomesX
  bio-dataprep tasks DNase ATAC H3K27ac
  bio-dataprep labels -categorical=cell_type labels.tsv.gz
  bio-dataprep tile -tile-len=1000 -stride=500 -chroms=autosomes ref.fa.fai
*/
package main

import "github.com/grailbio/dataprep/cmd/bio-dataprep/cmd"

func main() {
	cmd.Run()
}
