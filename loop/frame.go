package loop

import "time"

// Frame is handed to every system during one pass of the scheduler.
type Frame struct {
	// Now is the timestamp of this pass; systems pass it on to time-based engine calls.
	Now time.Time
	// Delta is the time since the previous pass, zero on the first one.
	Delta    time.Duration
	Index    int64
	Commands *Commands
}
