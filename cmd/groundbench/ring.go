// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/insolar/groundkit/atomickit"
	"github.com/insolar/groundkit/synckit"
	"github.com/insolar/groundkit/throw"
	"github.com/insolar/groundkit/uninitkit"
)

type ringResult struct {
	Capacity int     `json:"capacity"`
	Batch    int     `json:"batch"`
	Bytes    int     `json:"bytes"`
	Seconds  float64 `json:"seconds"`
	MBps     float64 `json:"mbps"`
}

func ringCommand() *cobra.Command {
	var (
		capacity int
		batch    int
		total    int
	)
	c := &cobra.Command{
		Use:   "ring",
		Short: "Measure an SPSC byte ring built on uninitkit disjoint subslice access",
		Run: func(cmd *cobra.Command, args []string) {
			runRingBench(capacity, batch, total)
		},
	}
	c.Flags().IntVar(&capacity, "capacity", 1<<16, "ring capacity, power of two")
	c.Flags().IntVar(&batch, "batch", 512, "producer/consumer batch size")
	c.Flags().IntVar(&total, "bytes", 1<<28, "total bytes to transfer")
	return c
}

func runRingBench(capacity, batch, total int) {
	ring := newByteRing(capacity)
	logger.Info().Int("capacity", capacity).Int("batch", batch).Int("bytes", total).
		Msg("starting ring transfer")

	done := make(synckit.ClosableSignalChannel)
	src := make([]byte, batch)
	for i := range src {
		src[i] = byte(i)
	}

	var sum atomickit.Int
	go func() {
		defer func() {
			_ = synckit.SafeClose(done)
		}()
		dst := make([]byte, batch)
		s, got := 0, 0
		for got < total {
			n := ring.read(dst)
			if n == 0 {
				continue
			}
			got += n
			for _, b := range dst[:n] {
				s += int(b)
			}
		}
		sum.Store(s)
	}()

	start := time.Now()
	for sent := 0; sent < total; {
		n := batch
		if left := total - sent; n > left {
			n = left
		}
		sent += ring.write(src[:n])
	}
	<-done
	took := time.Since(start)

	batchSum := 0
	for _, b := range src {
		batchSum += int(b)
	}
	expected := (total / batch) * batchSum
	for i := 0; i < total%batch; i++ {
		expected += int(src[i])
	}
	if sum.Load() != expected {
		logger.Fatal().Int("sum", sum.Load()).Int("expected", expected).Msg("transfer corrupted")
	}

	r := ringResult{
		Capacity: capacity, Batch: batch, Bytes: total,
		Seconds: took.Seconds(),
		MBps:    rps(total, took) / (1 << 20),
	}
	logger.Info().Float64("mbps", r.MBps).Msg("ring bench done")
	emitResult(r)
}

// byteRing is a single-producer/single-consumer ring over an uninitialized
// array cell. The cursors are the bookkeeping that makes the unchecked
// subslice accesses provably disjoint: the producer only writes [tail, head+cap),
// the consumer only reads [head, tail).
type byteRing struct {
	cell *uninitkit.ArrayCell[byte]
	mask int
	head atomickit.Int // read cursor, advanced only by the consumer
	tail atomickit.Int // write cursor, advanced only by the producer
}

func newByteRing(capacity int) *byteRing {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(throw.IllegalValue())
	}
	return &byteRing{
		cell: uninitkit.NewArrayCell[byte](capacity),
		mask: capacity - 1,
	}
}

// write copies bytes of (src) into the ring without overwriting unread data.
// Returns the number of bytes accepted. Must only be called by the producer.
func (p *byteRing) write(src []byte) int {
	head := p.head.Load()
	tail := p.tail.Load()

	n := p.cell.Count() - (tail - head)
	if n > len(src) {
		n = len(src)
	}
	if n == 0 {
		return 0
	}

	idx := tail & p.mask
	first := p.cell.Count() - idx
	if first > n {
		first = n
	}
	copy(p.cell.SubsliceUnchecked(idx, first), src[:first])
	if n > first {
		copy(p.cell.SubsliceUnchecked(0, n-first), src[first:n])
	}

	p.tail.Store(tail + n)
	return n
}

// read copies unread bytes into (dst). Returns the number of bytes copied.
// Must only be called by the consumer.
func (p *byteRing) read(dst []byte) int {
	head := p.head.Load()
	tail := p.tail.Load()

	n := tail - head
	if n > len(dst) {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}

	idx := head & p.mask
	first := p.cell.Count() - idx
	if first > n {
		first = n
	}
	copy(dst[:first], p.cell.SubsliceUnchecked(idx, first))
	if n > first {
		copy(dst[first:n], p.cell.SubsliceUnchecked(0, n-first))
	}

	p.head.Store(head + n)
	return n
}
