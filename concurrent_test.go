// Copyright 2020 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pgunzip

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

func TestDecompressSourcesPreservesOrder(t *testing.T) {
	var sources []Source
	var want [][]byte
	for i := 0; i < 20; i++ {
		data := []byte(fmt.Sprintf("payload number %d", i))
		want = append(want, data)
		sources = append(sources, Source{
			Name: fmt.Sprintf("file-%d.gz", i),
			Data: gzipBytes(t, data, fmt.Sprintf("file-%d", i)),
		})
	}

	results, err := DecompressSources(context.Background(), sources, WithConcurrency(4))
	if err != nil {
		t.Fatalf("DecompressSources: %v", err)
	}
	if len(results) != len(sources) {
		t.Fatalf("got %d results, want %d", len(results), len(sources))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("result %d: %v", i, r.Err)
		}
		if !bytes.Equal(r.Data, want[i]) {
			t.Fatalf("result %d: got %q, want %q", i, r.Data, want[i])
		}
		if r.Name != sources[i].Name {
			t.Fatalf("result %d: got name %q, want %q", i, r.Name, sources[i].Name)
		}
	}
}

func TestDecompressSourcesReportsProgressInOrder(t *testing.T) {
	var sources []Source
	for i := 0; i < 8; i++ {
		sources = append(sources, Source{
			Name: fmt.Sprintf("f%d", i),
			Data: gzipBytes(t, []byte(fmt.Sprintf("data-%d", i)), ""),
		})
	}

	progressCh := make(chan Progress, len(sources))
	_, err := DecompressSources(context.Background(), sources, WithConcurrency(3), WithProgress(progressCh))
	if err != nil {
		t.Fatalf("DecompressSources: %v", err)
	}
	close(progressCh)

	next := 0
	for p := range progressCh {
		if p.Index != next {
			t.Fatalf("got progress index %d, want %d", p.Index, next)
		}
		next++
	}
	if next != len(sources) {
		t.Fatalf("got %d progress updates, want %d", next, len(sources))
	}
}

func TestDecompressSourcesPropagatesErrors(t *testing.T) {
	sources := []Source{
		{Name: "good", Data: gzipBytes(t, []byte("ok"), "")},
		{Name: "bad", Data: []byte("not gzip at all")},
	}
	results, err := DecompressSources(context.Background(), sources)
	if err != nil {
		t.Fatalf("DecompressSources: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("result 0: unexpected error %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Fatal("result 1: expected an error for non-gzip input")
	}
}

func TestDecompressSourcesEmpty(t *testing.T) {
	results, err := DecompressSources(context.Background(), nil)
	if err != nil {
		t.Fatalf("DecompressSources: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}
