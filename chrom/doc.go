// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrom expands chromosome-name shortcuts such as "autosomes" into
// explicit lists of reference sequence names.
//
// The shortcut tables are built once and never handed out directly; every
// expansion returns a fresh slice, so callers may modify the result freely.
package chrom
