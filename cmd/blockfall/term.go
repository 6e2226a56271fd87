package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
	blog "github.com/plus3/blockfall/log"
	"github.com/plus3/blockfall/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "play in the terminal",
	Long:  `Plays in the terminal without sound. Set log.path to keep logs, since the terminal is taken over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Log.Path == "" {
			blog.SetOutput(io.Discard)
		}

		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := s.Init(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		defer s.Fini()
		s.SetStyle(term.DefStyle)

		status := driver.NewStatus()
		engine := game.New(
			game.WithRandomizer(newRandomizer(cfg.Game.Seed)),
			game.WithListener(status),
			game.WithLogger(blog.Logger()),
		)
		session := term.NewSession(s, engine, status, blog.Logger())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		session.Run(ctx, driver.FrameInterval)
		return nil
	},
}
