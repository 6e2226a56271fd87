package driver

import (
	"time"

	"github.com/plus3/blockfall/game"
)

// IntentSource yields the intents produced since the previous poll.
type IntentSource interface {
	Poll(now time.Time) []game.Intent
}

// ChanSource hands intents from an input goroutine to the loop goroutine.
type ChanSource struct {
	ch  chan game.Intent
	buf []game.Intent
}

func NewChanSource(capacity int) *ChanSource {
	return &ChanSource{ch: make(chan game.Intent, capacity)}
}

// Send queues an intent without blocking. It reports false when the buffer is
// full and the intent was dropped.
func (s *ChanSource) Send(intent game.Intent) bool {
	select {
	case s.ch <- intent:
		return true
	default:
		return false
	}
}

func (s *ChanSource) Poll(time.Time) []game.Intent {
	s.buf = s.buf[:0]
	for {
		select {
		case intent := <-s.ch:
			s.buf = append(s.buf, intent)
		default:
			return s.buf
		}
	}
}

// Sources merges several sources, polled in order.
type Sources []IntentSource

func (s Sources) Poll(now time.Time) []game.Intent {
	var out []game.Intent
	for _, src := range s {
		out = append(out, src.Poll(now)...)
	}
	return out
}
