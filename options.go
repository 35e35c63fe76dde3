// Copyright 2019 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pgunzip

import "runtime"

type batchOpts struct {
	verbose     bool
	concurrency int
	progressCh  chan<- Progress
}

// Option configures DecompressSources and NewReader.
type Option func(*batchOpts)

// WithVerbose turns on trace logging of the sources being decompressed
// and their sizes.
func WithVerbose(v bool) Option {
	return func(o *batchOpts) {
		o.verbose = v
	}
}

// WithConcurrency sets the number of sources decompressed in parallel by
// DecompressSources. It has no effect on NewReader, which always
// decompresses a single source.
func WithConcurrency(n int) Option {
	return func(o *batchOpts) {
		o.concurrency = n
	}
}

// WithProgress sets the channel DecompressSources sends a Progress update
// to after each source is decompressed and reassembled in input order.
func WithProgress(ch chan<- Progress) Option {
	return func(o *batchOpts) {
		o.progressCh = ch
	}
}

func newBatchOpts(opts ...Option) *batchOpts {
	o := &batchOpts{concurrency: runtime.GOMAXPROCS(-1)}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
