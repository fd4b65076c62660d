package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/on-the-ground/intseq/config"
	"github.com/on-the-ground/intseq/internal/logging"
	"github.com/on-the-ground/intseq/metrics"
	"github.com/on-the-ground/intseq/registry"
	"github.com/on-the-ground/intseq/sequence"
	"github.com/on-the-ground/intseq/sloane"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	configPath string
	logLevel   string
	blockSize  int64
}

// app is what every subcommand runs against once the root has loaded the
// settings.
type app struct {
	settings config.Settings
	logger   *zap.Logger
	gatherer *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     app
	)

	rootCmd := &cobra.Command{
		Use:          "sloane",
		Short:        "Evaluate integer sequences from the catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(settings.Log.Level)
			if err != nil {
				return err
			}

			a.settings = settings
			a.logger = logging.NewWithWriter(level, cmd.ErrOrStderr())
			a.gatherer = prometheus.NewRegistry()
			cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

			sloane.Configure(
				registry.WithSettings(settings),
				registry.WithLogger(a.logger),
				registry.WithMetrics(metrics.New(a.gatherer)),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			logging.Sync(logging.FromContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a YAML settings file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().Int64Var(&flags.blockSize, "block-size", 0, "integers searched per scan block")

	rootCmd.AddCommand(
		newEvalCmd(),
		newListCmd(),
		newSliceCmd(),
		newNamesCmd(),
		newDescribeCmd(),
		newStatsCmd(&a),
		newValidateCmd(),
		newConfigCmd(&a),
	)
	return rootCmd
}

// loadSettings reads --config over the defaults and applies the flags the
// user set explicitly.
func loadSettings(cmd *cobra.Command, flags rootFlags) (config.Settings, error) {
	settings := config.Default()
	if flags.configPath != "" {
		var err error
		if settings, err = config.Load(flags.configPath); err != nil {
			return config.Settings{}, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		settings.Log.Level = flags.logLevel
	}
	if cmd.Flags().Changed("block-size") {
		settings.Scan.BlockSize = flags.blockSize
	}
	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME N",
		Short: "Print the term at index N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := sloane.At(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list NAME COUNT",
		Short: "Print the first COUNT terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: count %q", sequence.ErrNotInteger, args[1])
			}
			vals, err := sloane.List(args[0], count)
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), vals)
		},
	}
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice NAME START:STOP[:STEP]",
		Short: "Print the terms at the positions a slice selects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := sequence.ParseSlice(args[1])
			if err != nil {
				return err
			}
			vals, err := sloane.Slice(args[0], spec)
			if err != nil {
				return err
			}
			return printTerms(cmd.OutOrStdout(), vals)
		},
	}
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List every sequence in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sloane.Names(), "\n"))
			return err
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Print what a sequence is without computing any term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := sloane.Describe(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", e.Name, e.Description)
			if len(e.DependsOn) > 0 {
				fmt.Fprintf(out, "depends on: %s\n", strings.Join(e.DependsOn, ", "))
			}
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var terms int
	cmd := &cobra.Command{
		Use:   "stats NAME...",
		Short: "Compute terms of the named sequences and print the collected metrics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := sloane.Default()
			if err != nil {
				return err
			}
			if err := r.Warm(cmd.Context(), args...); err != nil {
				return err
			}
			for _, name := range args {
				if _, err := sloane.List(name, terms); err != nil {
					return err
				}
			}
			for _, info := range r.Constructed() {
				a.logger.Info("constructed",
					zap.String("name", info.Name),
					zap.Stringer("id", info.ID),
					zap.Duration("took", info.Built.Duration()),
				)
			}

			families, err := a.gatherer.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&terms, "terms", 10, "terms to compute per sequence")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog's dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := sloane.Default()
			if err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d sequences, dependency graph ok\n", len(r.Names()))
			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings after the file and flags are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if asYAML {
				data, err := a.settings.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}
			for _, key := range config.Keys {
				v, _ := a.settings.Lookup(key)
				if _, err := fmt.Fprintf(out, "%s = %v\n", key, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the settings as a loadable YAML file")
	return cmd
}

func printTerms(w io.Writer, vals []*big.Int) error {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ", "))
	return err
}
