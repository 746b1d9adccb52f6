// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/insolar/groundkit/irqkit"
	"github.com/insolar/groundkit/synckit"
)

// fakeDevice stands in for a peripheral handed over to a handler context.
type fakeDevice struct {
	baud   int
	served int
}

// globalDevice is the static handoff slot shared with the handler goroutine.
var globalDevice irqkit.Global[fakeDevice]

type handoffResult struct {
	Ops     int     `json:"ops"`
	Seconds float64 `json:"seconds"`
	RPS     float64 `json:"rps"`
}

func handoffCommand() *cobra.Command {
	var ops int
	c := &cobra.Command{
		Use:   "handoff",
		Short: "Measure the claimed-access (zero synchronization) path of irqkit",
		Run: func(cmd *cobra.Command, args []string) {
			runHandoffBench(ops)
		},
	}
	c.Flags().IntVar(&ops, "ops", 50_000_000, "accesses performed by the handler")
	return c
}

func runHandoffBench(ops int) {
	globalDevice.Load(fakeDevice{baud: 115200})
	logger.Info().Int("ops", ops).Msg("device loaded, starting handler")

	done := make(synckit.ClosableSignalChannel)
	served := 0

	go func() {
		defer func() {
			_ = synckit.SafeClose(done)
		}()
		// handler context: sole claimer of globalDevice
		var localDevice irqkit.Local[fakeDevice]
		for i := 0; i < ops; i++ {
			dev := localDevice.GetOrClaim(&globalDevice)
			dev.served++
		}
		served = localDevice.GetOrClaim(&globalDevice).served
	}()

	start := time.Now()
	<-done
	took := time.Since(start)

	if served != ops {
		logger.Fatal().Int("served", served).Int("ops", ops).Msg("handler lost accesses")
	}

	r := handoffResult{Ops: ops, Seconds: took.Seconds(), RPS: rps(ops, took)}
	logger.Info().Int("ops", r.Ops).Float64("rps", r.RPS).Msg("handoff bench done")
	emitResult(r)
}
