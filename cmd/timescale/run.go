//go:build linux

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"

	"github.com/clipperhouse/timescale"
)

// fileConfig is the YAML shape accepted by --config.
type fileConfig struct {
	Scale     *float64 `yaml:"scale"`
	Verbosity *int     `yaml:"verbosity"`
	Hooks     []string `yaml:"hooks"`
}

// applyFile layers file values under any flags the user set explicitly;
// flags win.
func (o *rootOptions) applyFile(path string, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if fc.Scale != nil && !cmd.Flags().Changed("scale") {
		o.Scale = *fc.Scale
	}
	if fc.Verbosity != nil && !cmd.Flags().Changed("verbosity") {
		o.Verbosity = *fc.Verbosity
	}
	if fc.Hooks != nil && !cmd.Flags().Changed("hooks") {
		o.Hooks = fc.Hooks
		o.HooksSet = true
	}
	return nil
}

// environ returns the process environment with the TIMESCALE_* values
// appended, so they win over any inherited ones.
func (o *rootOptions) environ() []string {
	env := os.Environ()
	env = append(env, timescale.EnvScale+"="+strconv.FormatFloat(o.Scale, 'f', -1, 64))
	env = append(env, timescale.EnvVerbosity+"="+strconv.Itoa(o.Verbosity))
	if o.HooksSet {
		env = append(env, timescale.EnvHooks+"="+strings.Join(o.Hooks, ","))
	}
	return env
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run -- program [args...]",
		Short: "Exec a program with the timescale environment injected",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := exec.LookPath(args[0])
			if err != nil {
				return fmt.Errorf("finding %s: %w", args[0], err)
			}
			// Replaces this process; only returns on error.
			if err := unix.Exec(path, args, opts.environ()); err != nil {
				return fmt.Errorf("exec %s: %w", path, err)
			}
			return nil
		},
	}
}

func newEnvCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the environment run would inject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n",
				timescale.EnvScale, strconv.FormatFloat(opts.Scale, 'f', -1, 64))
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n",
				timescale.EnvVerbosity, opts.Verbosity)
			if opts.HooksSet {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n",
					timescale.EnvHooks, strings.Join(opts.Hooks, ","))
			}
			return nil
		},
	}
}
