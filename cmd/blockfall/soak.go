package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/game"
	blog "github.com/plus3/blockfall/log"
)

type soakOptions struct {
	Sessions       int
	Duration       time.Duration
	Frame          time.Duration
	PerFrame       int
	Seed           uint64
	GCPauseMetrics bool
}

var soakFlags struct {
	sessions       int
	duration       time.Duration
	frame          time.Duration
	perFrame       int
	gcPauseMetrics bool
}

var soakCmd = &cobra.Command{
	Use:   "soak",
	Short: "run bot sessions headless and print a report",
	Long: `Runs bot-driven sessions as fast as possible on a simulated clock,
restarting each one after a game over, then prints frame timings and play totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := soakOptions{
			Sessions:       cfg.Soak.Sessions,
			Duration:       cfg.Soak.Duration,
			Frame:          cfg.Soak.Frame,
			PerFrame:       cfg.Soak.PerFrame,
			Seed:           cfg.Game.Seed,
			GCPauseMetrics: soakFlags.gcPauseMetrics,
		}
		flags := cmd.Flags()
		if flags.Changed("sessions") {
			opts.Sessions = soakFlags.sessions
		}
		if flags.Changed("duration") {
			opts.Duration = soakFlags.duration
		}
		if flags.Changed("frame") {
			opts.Frame = soakFlags.frame
		}
		if flags.Changed("per-frame") {
			opts.PerFrame = soakFlags.perFrame
		}
		if opts.Sessions < 1 || opts.Duration <= 0 || opts.Frame <= 0 || opts.PerFrame < 1 {
			return fmt.Errorf("soak: sessions, duration, frame and per-frame must be positive")
		}
		if opts.Seed == 0 {
			opts.Seed = uint64(time.Now().UnixNano())
		}

		blog.Info("running %d sessions for %s...", opts.Sessions, opts.Duration)
		report := runSoak(cmd.Context(), opts, blog.Logger())
		blog.Info("soak finished")

		fmt.Println("\n\n--- Soak Report ---")
		if err := report.Generate(os.Stdout); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
		fmt.Println("--- End of Report ---")
		return nil
	},
}

func init() {
	flags := soakCmd.Flags()
	flags.IntVar(&soakFlags.sessions, "sessions", 8, "number of concurrent sessions")
	flags.DurationVar(&soakFlags.duration, "duration", 10*time.Minute, "the total duration the soak should run for")
	flags.DurationVar(&soakFlags.frame, "frame", 16*time.Millisecond, "simulated time per frame")
	flags.IntVar(&soakFlags.perFrame, "per-frame", 1, "bot intents per frame")
	flags.BoolVar(&soakFlags.gcPauseMetrics, "gc-pause-metrics", false, "include GC pause metrics in the report")
}

type sessionResult struct {
	frames    int64
	pieces    int64
	lines     int64
	gameOvers int64
	maxScore  int
	maxLevel  int
	intents   int64
	rejected  int64
	drops     int64
	update    Stats
}

func runSoak(ctx context.Context, opts soakOptions, logger *log.Logger) *Report {
	report := &Report{
		Sessions:       opts.Sessions,
		Duration:       opts.Duration,
		Frame:          opts.Frame,
		PerFrame:       opts.PerFrame,
		Seed:           opts.Seed,
		GCPauseMetrics: opts.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()

	startTime := time.Now()
	results := make([]sessionResult, opts.Sessions)
	var wg sync.WaitGroup
	for i := range opts.Sessions {
		wg.Go(func() {
			results[i] = soakSession(ctx, opts, opts.Seed+uint64(i), logger)
		})
	}
	wg.Wait()
	report.TotalTime = time.Since(startTime)

	for _, r := range results {
		report.TotalFrames += r.frames
		report.Pieces += r.pieces
		report.Lines += r.lines
		report.GameOvers += r.gameOvers
		report.MaxScore = max(report.MaxScore, r.maxScore)
		report.MaxLevel = max(report.MaxLevel, r.maxLevel)
		report.Intents += r.intents
		report.Rejected += r.rejected
		report.Drops += r.drops
		report.UpdateTime.Merge(r.update)
	}
	report.GameTime = time.Duration(report.TotalFrames) * opts.Frame
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report
}

// soakSession plays one bot session on a simulated clock until ctx is done.
func soakSession(ctx context.Context, opts soakOptions, seed uint64, logger *log.Logger) sessionResult {
	var (
		res    sessionResult
		engine *game.Engine
	)
	roundOver := func(ev game.Event) {
		res.pieces += int64(engine.Pieces())
		res.lines += int64(ev.Lines)
	}
	engine = game.New(
		game.WithRandomizer(newRandomizer(seed)),
		game.WithLogger(logger),
		game.WithListener(game.ListenerFunc(func(ev game.Event) {
			res.maxScore = max(res.maxScore, ev.Score)
			res.maxLevel = max(res.maxLevel, ev.Level)
			if ev.Kind == game.EventGameOver {
				res.gameOvers++
				roundOver(ev)
			}
		})),
	)

	bot := driver.NewBot(engine)
	bot.PerPoll = opts.PerFrame
	bot.Restart = true
	d := driver.New(engine, bot)

	now := time.Now()
	if err := engine.Start(now); err != nil {
		logger.Error("soak session start", "err", err)
		return res
	}

	for ctx.Err() == nil {
		now = now.Add(opts.Frame)
		start := time.Now()
		d.Step(now)
		res.update.Add(time.Since(start))
		res.frames++
	}

	if engine.Phase() != game.GameOver {
		res.pieces += int64(engine.Pieces())
		res.lines += int64(engine.Lines())
	}
	res.intents, res.rejected, res.drops = d.Counters()
	return res
}
