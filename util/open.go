// Package util holds small I/O helpers shared by the dataprep packages.
package util

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// ReadPath opens path with grailbio/base/file and passes its contents to fn.
// s3:// paths work once an s3 implementation is registered with
// file.RegisterImplementation, as bio-dataprep does at startup. Gzipped paths (by suffix) are
// decompressed transparently. Errors from fn take precedence over errors
// from closing the file.
func ReadPath(ctx context.Context, path string, fn func(io.Reader) error) (err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	return fn(reader)
}

// WritePath creates path and passes a writer for it to fn. Paths ending in
// .gz are gzip-compressed.
func WritePath(ctx context.Context, path string, fn func(io.Writer) error) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		gz := gzip.NewWriter(out.Writer(ctx))
		if err = fn(gz); err != nil {
			return
		}
		return gz.Close()
	}
	return fn(out.Writer(ctx))
}
