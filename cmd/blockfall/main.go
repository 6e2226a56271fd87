package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/config"
	blog "github.com/plus3/blockfall/log"
)

var (
	configFile string
	cfg        *config.Config
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall falling block puzzle",
	Long:  `blockfall drops pieces into a 10x20 well; fill rows to clear them. Without a subcommand it opens a window.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
		if logCloser, err = blog.InitLog("blockfall", cfg.Log.Level, cfg.Log.Path); err != nil {
			return err
		}
		blog.Debug("config: %+v", *cfg)
		if cfg.Debug.StatsvizAddr != "" {
			serveStats(cfg.Debug.StatsvizAddr)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cfg)
	},
	SilenceUsage: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.AddCommand(playCmd, termCmd, soakCmd)
}

// newRandomizer seeds the piece sequence; seed 0 picks one at random.
func newRandomizer(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
