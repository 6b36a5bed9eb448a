package cmd

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
)

var registerS3Once sync.Once

// registerS3 makes s3:// paths readable and writable through
// grailbio/base/file, using the default AWS credential chain.
func registerS3() {
	registerS3Once.Do(func() {
		file.RegisterImplementation("s3", func() file.Implementation {
			return s3file.NewImplementation(
				s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
		})
	})
}
