// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pgunzip

import (
	"container/heap"
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Source is one compressed input to DecompressSources: Name labels it
// (typically a file path or URL, used in FileResult and Progress), Data
// is the complete gzip-compressed buffer.
type Source struct {
	Name string
	Data []byte
}

// FileResult is the outcome of decompressing one Source.
type FileResult struct {
	Name     string
	Data     []byte
	Header   Header
	Err      error
	Duration time.Duration
}

// Progress reports on one source's decompression, delivered in the same
// order sources were supplied (not the order they finished decompressing).
type Progress struct {
	Duration       time.Duration
	Index          int
	Name           string
	CompressedSize int
	Size           int
}

// DecompressSources decompresses each Source concurrently and returns
// their results in the same order as sources, regardless of which
// finished first. This is the only place in the package where
// decompression runs concurrently: each Source's own Decompress call is
// entirely sequential (per internal/deflate's non-streaming, CPU-bound
// design), and the concurrency here fans out across sources rather than
// within any one of them.
func DecompressSources(ctx context.Context, sources []Source, opts ...Option) ([]FileResult, error) {
	o := newBatchOpts(opts...)
	concurrency := o.concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(sources) {
		concurrency = len(sources)
	}
	if concurrency == 0 {
		return nil, nil
	}

	jobs := make(chan int)
	results := make(chan *jobResult, len(sources))

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			worker(ctx, sources, jobs, results, o.verbose)
		}()
	}

	go func() {
		defer close(jobs)
		for i := range sources {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return reassemble(ctx, sources, results, o.progressCh)
}

type jobResult struct {
	index  int
	result FileResult
}

func worker(ctx context.Context, sources []Source, jobs <-chan int, out chan<- *jobResult, verbose bool) {
	for {
		select {
		case i, ok := <-jobs:
			if !ok {
				return
			}
			start := time.Now()
			src := sources[i]
			if verbose {
				log.Printf("pgunzip: decompressing %s (%d bytes)", src.Name, len(src.Data))
			}
			data, hdr, err := Decompress(src.Data)
			out <- &jobResult{
				index: i,
				result: FileResult{
					Name:     src.Name,
					Data:     data,
					Header:   hdr,
					Err:      err,
					Duration: time.Since(start),
				},
			}
		case <-ctx.Done():
			return
		}
	}
}

// resultHeap orders jobResults by their original index so reassemble can
// emit them (and any Progress updates) strictly in input order.
type resultHeap []*jobResult

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].index < h[j].index }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(*jobResult)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func reassemble(ctx context.Context, sources []Source, in <-chan *jobResult, progressCh chan<- Progress) ([]FileResult, error) {
	n := len(sources)
	results := make([]FileResult, n)
	h := &resultHeap{}
	heap.Init(h)
	expected := 0
	received := 0

	for received < n {
		select {
		case jr, ok := <-in:
			if !ok {
				return results, fmt.Errorf("pgunzip: worker pool closed early after %d/%d results", received, n)
			}
			received++
			heap.Push(h, jr)
			for h.Len() > 0 && (*h)[0].index == expected {
				next := heap.Pop(h).(*jobResult)
				results[next.index] = next.result
				if progressCh != nil {
					progressCh <- Progress{
						Duration:       next.result.Duration,
						Index:          next.index,
						Name:           next.result.Name,
						CompressedSize: len(sources[next.index].Data),
						Size:           len(next.result.Data),
					}
				}
				expected++
			}
		case <-ctx.Done():
			return results, ctx.Err()
		}
	}
	return results, nil
}
