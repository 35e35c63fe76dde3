// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pgunzip decompresses and inspects gzip files. Files may be
// local, on S3, or fetched over HTTP(S).
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/spf13/cobra"
)

var (
	concurrency int
	verbose     bool
)

func main() {
	root := &cobra.Command{
		Use:   "pgunzip",
		Short: "decompress and inspect gzip files",
	}
	root.PersistentFlags().IntVar(&concurrency, "concurrency", runtime.GOMAXPROCS(-1),
		"concurrency to use when decompressing more than one file")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose debug/trace information")

	root.AddCommand(newCatCommand(), newUnzipCommand(), newInspectCommand())

	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
