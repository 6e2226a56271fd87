package loop

// Commands buffers work that must run after every system of a frame has executed,
// such as drawing UI or applying changes that would disturb later systems.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, fn)
}

// Len is the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued functions in order and resets the buffer. Functions
// deferred while flushing run in the same flush.
func (c *Commands) Flush() int {
	n := 0
	for n < len(c.defers) {
		fn := c.defers[n]
		c.defers[n] = nil
		fn()
		n++
	}
	c.defers = c.defers[:0]
	return n
}
