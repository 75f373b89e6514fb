package main

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "KPATHS"

// newRootCommand wires the flags into a fresh viper instance so that every
// setting can also come from KPATHS_* variables or a --config file.
func newRootCommand(ctx context.Context, version string) *cobra.Command {
	var configFile string
	vi := viper.New()

	rootCmd := &cobra.Command{
		Use:          "kpaths",
		Short:        "Rank the routes between two vertices of a weighted digraph, shortest first.",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(vi, cmd.Flags(), configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := newInput(vi, cmd.Flags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd, input.verbose)

			return newRunner(input, logger).run(ctx, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("vertices", "", "comma-separated vertex labels, e.g. S,A,B,T")
	flags.StringArray("edge", nil, "edge list TAILS:HEADS:WEIGHT[:GROUP], repeatable")
	flags.StringArray("group-weight", nil, "re-weight a group GROUP=WEIGHT after the edges, repeatable")
	flags.StringP("source", "s", "", "source vertex label")
	flags.StringP("target", "t", "", "target vertex label")
	flags.IntP("count", "k", 0, "number of paths to print, 0 for all")
	flags.Int("max", defaultMaxPaths, "upper bound on printed paths when --count is 0")
	flags.Bool("demo", false, "rank the example graph of Eppstein (1997) from S to T")
	flags.Bool("extras", false, "with --demo, add the diagonal, dead-end and self-loop edges")
	flags.StringP("output", "o", outputText, "output format: text or yaml")
	flags.BoolP("verbose", "v", false, "verbose output")

	return rootCmd
}

// loadConfig binds flags and environment, then reads the optional config file.
// Explicit flags win over the environment, which wins over the file.
func loadConfig(vi *viper.Viper, flags *pflag.FlagSet, configFile string) error {
	vi.SetEnvPrefix(envPrefix)
	vi.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vi.AutomaticEnv()

	if err := vi.BindPFlags(flags); err != nil {
		return err
	}
	if configFile == "" {
		return nil
	}
	vi.SetConfigFile(configFile)
	if err := vi.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}

	return nil
}

func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
