// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

// Command groundbench exercises the groundkit primitives under load:
// the one-shot handoff path (irqkit) and a single-producer/single-consumer
// byte ring built on an uninitialized array cell (uninitkit).
package main

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const cmdName = "groundbench"

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	logLevel   string
	jsonOutput bool
)

var logger zerolog.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:          cmdName,
		Short:        "Benchmarks for groundkit primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}
	registerRootFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		handoffCommand(),
		ringCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("execution failed")
	}
}

func registerRootFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&logLevel, "level", "l", "info", "log level")
	flags.BoolVar(&jsonOutput, "json", false, "emit results as JSON to stdout")
}

func setupLogger() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.StampMilli}).
		Level(level).With().Timestamp().Logger()
	return nil
}

func emitResult(v interface{}) {
	if !jsonOutput {
		return
	}
	s, err := jsonCodec.MarshalToString(v)
	if err != nil {
		logger.Fatal().Err(err).Msg("couldn't marshal result")
	}
	os.Stdout.WriteString(s + "\n")
}

func rps(count int, took time.Duration) float64 {
	if took <= 0 {
		return 0
	}
	return float64(count) / took.Seconds()
}
