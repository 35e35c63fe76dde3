// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/grailbio/base/file"
)

// openFileOrURL opens name for reading: an http(s) URL is fetched directly,
// anything else (a local path or an s3:// path) goes through grailbio's
// file package, which dispatches to the implementation registered for its
// scheme. Local and S3 opens are retried with backoff, since S3 in
// particular sees transient throttling errors that succeed on retry;
// an HTTP fetch is not retried here since its body is a single-shot
// stream the caller consumes directly.
func openFileOrURL(ctx context.Context, name string) (r interface {
	Read(p []byte) (int, error)
}, size int64, closeFn func(context.Context) error, err error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		resp, ferr := http.Get(name)
		if ferr != nil {
			return nil, 0, nil, ferr
		}
		return resp.Body, resp.ContentLength, func(context.Context) error {
			return resp.Body.Close()
		}, nil
	}

	var f file.File
	retryErr := retry(ctx, func() error {
		var openErr error
		f, openErr = file.Open(ctx, name)
		return openErr
	})
	if retryErr != nil {
		return nil, 0, nil, retryErr
	}
	info, statErr := file.Stat(ctx, name)
	if statErr != nil {
		f.Close(ctx)
		return nil, 0, nil, statErr
	}
	return f.Reader(ctx), info.Size(), f.Close, nil
}

// createFileOrStdout opens name for writing, or returns os.Stdout if name
// is empty.
func createFileOrStdout(ctx context.Context, name string) (w interface {
	Write(p []byte) (int, error)
}, closeFn func(context.Context) error, err error) {
	if len(name) == 0 {
		return os.Stdout, func(context.Context) error { return nil }, nil
	}
	var f file.File
	retryErr := retry(ctx, func() error {
		var createErr error
		f, createErr = file.Create(ctx, name)
		return createErr
	})
	if retryErr != nil {
		return nil, nil, retryErr
	}
	return f.Writer(ctx), f.Close, nil
}

// retry wraps fn with an exponential backoff, bounded so a persistently
// failing open (a missing file, say) doesn't hang the CLI indefinitely.
func retry(ctx context.Context, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	return backoff.Retry(fn, backoff.WithContext(b, ctx))
}
