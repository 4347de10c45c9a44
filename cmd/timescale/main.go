//go:build linux

// Command timescale runs a program on a scaled timeline by injecting
// the TIMESCALE_* environment variables it reads on startup.
//
//	timescale run --scale 10 -- ./server --port 8080
//	timescale run --config sim.yaml -- ./worker
//	timescale env --scale 0.5 --hooks nanosleep,clock_gettime
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clipperhouse/timescale"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the flags shared by all subcommands. They mirror
// the three values the engine reads from its environment.
type rootOptions struct {
	Scale      float64
	Verbosity  int
	Hooks      []string
	HooksSet   bool
	ConfigPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "timescale",
		Short:         "Run programs on a scaled timeline",
		Long:          "timescale injects the TIMESCALE_* environment so a program built on the timescale library observes virtual time.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigPath != "" {
				if err := opts.applyFile(opts.ConfigPath, cmd); err != nil {
					return err
				}
			}
			opts.HooksSet = opts.HooksSet || cmd.Flags().Changed("hooks")
			if opts.Scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", opts.Scale)
			}
			if unknown := unknownHooks(opts.Hooks); len(unknown) > 0 {
				fmt.Fprintf(os.Stderr, "warning: unknown hooks %v will be ignored\n", unknown)
			}
			return nil
		},
	}

	cmd.PersistentFlags().Float64Var(&opts.Scale, "scale", 1.0, "virtual-to-real time ratio (> 0)")
	cmd.PersistentFlags().IntVarP(&opts.Verbosity, "verbosity", "v", 0, "engine log level (0 silent .. 3 debug)")
	cmd.PersistentFlags().StringSliceVar(&opts.Hooks, "hooks", nil, "operations to intercept (default all; empty string for none)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (flags take precedence)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newEnvCommand(opts))

	return cmd
}

func unknownHooks(hooks []string) []string {
	var unknown []string
	for _, h := range hooks {
		if h == "" {
			continue
		}
		if _, ok := timescale.ParseOperation(h); !ok {
			unknown = append(unknown, h)
		}
	}
	return unknown
}
