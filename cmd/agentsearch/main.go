package main

import (
	"fmt"
	"os"

	"github.com/jingshiliu/qc-artificial-intelligence/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	logLevel   string
	configPath string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "agentsearch",
	Short: "Pathfinding and game-tree search on grid mazes",
	Long: "agentsearch plans paths through mazes with depth-first, breadth-first, uniform-cost and A* search,\n" +
		"and plays a runner against ghosts with minimax, alpha-beta and expectimax game-tree search.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set up zerolog
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		// Parse and set log level
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", logLevel)
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)

		cfg = config.Default()
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			log.Debug().Msgf("loaded config from %s", configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with run settings; flags override it")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(experimentCmd)
}

// override copies the flags the user set into the loaded config.
func override(flags *pflag.FlagSet, apply map[string]func()) {
	flags.Visit(func(f *pflag.Flag) {
		if fn, ok := apply[f.Name]; ok {
			fn()
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
