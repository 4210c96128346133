package main

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/libIM"
)

// Span is a half-open [Start, End) range of the sorted sample list
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Partition splits total samples into contiguous spans.
// Per-batch size is ceil(total/requested), lowered to maxSize when it exceeds it,
// so maxSize wins over requested. An empty list gives one empty span.
func Partition(total, requested, maxSize int) []Span {
	if total <= 0 {
		return []Span{{}}
	}
	var size = ceilDiv(total, requested)
	if size > maxSize {
		size = maxSize
	}
	var spans = make([]Span, 0, ceilDiv(total, size))
	for start := 0; start < total; start += size {
		var end = start + size
		if end > total {
			end = total
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}

// BatchFileNames keeps output as is for a single batch, otherwise output_<i>.csv
func BatchFileNames(output string, n int) []string {
	if n == 1 {
		return []string{output}
	}
	var (
		stem  = strings.TrimSuffix(output, ".csv")
		names = make([]string, n)
	)
	for i := range names {
		names[i] = fmt.Sprintf("%s_%d.csv", stem, i)
	}
	return names
}

// CreateBatches cuts infos by Partition and names every batch
func CreateBatches(infos []libIM.Info, cfg Config) []Batch {
	var (
		spans   = Partition(len(infos), cfg.NumberOfBatches, cfg.MaxSamplesInBatch)
		names   = BatchFileNames(cfg.Output, len(spans))
		batches = make([]Batch, len(spans))
	)
	for i, span := range spans {
		batches[i] = Batch{
			Index:   i,
			File:    names[i],
			Samples: infos[span.Start:span.End],
		}
	}
	return batches
}
