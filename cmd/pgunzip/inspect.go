// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cosnicolaou/pgunzip"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file...>",
		Short: "print each gzip member's header without writing decompressed data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := inspectFile(cmd.Context(), name); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}
	return cmd
}

func inspectFile(ctx context.Context, name string) error {
	in, _, cleanup, err := openFileOrURL(ctx, name)
	if err != nil {
		return err
	}
	defer cleanup(ctx)

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	headers, payloads, err := pgunzip.Members(data)
	if err != nil {
		return err
	}
	fmt.Printf("=== %s ===\n", name)
	for i, hdr := range headers {
		fmt.Printf("member %d: name=%q comment=%q modtime=%v os=%d size=%d\n",
			i, hdr.Name, hdr.Comment, hdr.ModTime, hdr.OS, len(payloads[i]))
	}
	return nil
}
