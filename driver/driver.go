package driver

import (
	"context"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

// FrameInterval is the default loop period, about 60 frames per second.
const FrameInterval = time.Second / 60

// Driver runs one engine on a scheduler: intents first, then automatic descent,
// then any extra systems.
type Driver struct {
	Engine    *game.Engine
	Scheduler *loop.Scheduler

	input *IntentSystem
	drop  *DropSystem
}

func New(engine *game.Engine, source IntentSource, extra ...loop.System) *Driver {
	d := &Driver{
		Engine:    engine,
		Scheduler: loop.NewScheduler(),
		input:     &IntentSystem{Engine: engine, Source: source},
		drop:      &DropSystem{Engine: engine},
	}

	d.Scheduler.Register(d.input)
	d.Scheduler.Register(d.drop)
	for _, sys := range extra {
		d.Scheduler.Register(sys)
	}
	return d
}

// Step runs a single frame stamped now.
func (d *Driver) Step(now time.Time) {
	d.Scheduler.Once(now)
}

// Run steps the driver on the wall clock until ctx is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = FrameInterval
	}
	d.Scheduler.Run(ctx, interval)
}

// Counters reports applied and rejected intents and automatic descent steps.
func (d *Driver) Counters() (applied, rejected, drops int64) {
	return d.input.Applied, d.input.Rejected, d.drop.Steps
}
