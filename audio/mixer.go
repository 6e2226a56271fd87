package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/game"
	blog "github.com/plus3/blockfall/log"
)

// DefaultVolume matches the initial slider position.
const DefaultVolume = 0.5

// player is the part of *audio.Player the mixer drives.
type player interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// Controls is the user-facing side of the mixer: the music switch and the volume slider.
type Controls interface {
	Volume() float64
	SetVolume(v float64)
	Muted() bool
	ToggleMuted() bool
}

// Mixer plays the game's cues and background loop. It implements game.AudioSink:
// nothing it does returns an error or panics, failures are logged and dropped.
type Mixer struct {
	mu      sync.Mutex
	cues    *intmap.Map[game.Cue, player]
	loop    player
	volume  float64
	muted   bool
	looping bool
	logger  *log.Logger
}

var (
	_ game.AudioSink = (*Mixer)(nil)
	_ Controls       = (*Mixer)(nil)
)

type Option func(*Mixer)

func WithVolume(v float64) Option {
	return func(m *Mixer) { m.volume = clamp(v) }
}

func WithMuted(muted bool) Option {
	return func(m *Mixer) { m.muted = muted }
}

func WithLogger(l *log.Logger) Option {
	return func(m *Mixer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New synthesizes the cue clips and background loop on ctx.
func New(ctx *audio.Context, opts ...Option) (*Mixer, error) {
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio: context sample rate %d, want %d", ctx.SampleRate(), SampleRate)
	}

	loop, err := newLoopPlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("audio: background loop: %w", err)
	}

	cues := make(map[game.Cue]player, len(cueNotes))
	for cue := range cueNotes {
		cues[cue] = ctx.NewPlayerFromBytes(cueClip(cue))
	}
	return newMixer(loop, cues, opts...), nil
}

func newMixer(loop player, cues map[game.Cue]player, opts ...Option) *Mixer {
	m := &Mixer{
		cues:   intmap.New[game.Cue, player](len(cues)),
		loop:   loop,
		volume: DefaultVolume,
	}
	for cue, p := range cues {
		m.cues.Put(cue, p)
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = blog.Logger()
	}
	m.logger = m.logger.WithPrefix("audio")
	m.applyVolume()
	return m
}

// Play restarts the clip for cue from the beginning.
func (m *Mixer) Play(cue game.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.cues.Get(cue)
	if !ok {
		m.logger.Warn("no clip for cue", "cue", cue)
		return
	}
	if err := p.Rewind(); err != nil {
		m.logger.Warn("cue playback failed", "cue", cue, "err", err)
		return
	}
	p.Play()
}

// PlayLoop starts or resumes the background loop unless music is muted.
func (m *Mixer) PlayLoop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.looping = true
	if m.muted || m.loop == nil {
		return
	}
	m.loop.Play()
}

// StopLoop stops the background loop and rewinds it.
func (m *Mixer) StopLoop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.looping = false
	if m.loop == nil {
		return
	}
	m.loop.Pause()
	if err := m.loop.Rewind(); err != nil {
		m.logger.Warn("background loop rewind failed", "err", err)
	}
}

// SetVolume sets the volume of every clip, clamped to [0, 1].
func (m *Mixer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volume = clamp(v)
	m.applyVolume()
}

func (m *Mixer) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetMuted pauses or resumes the background loop. Cues are unaffected.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setMuted(muted)
}

// ToggleMuted flips the music switch and returns the new state.
func (m *Mixer) ToggleMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setMuted(!m.muted)
	return m.muted
}

func (m *Mixer) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mixer) setMuted(muted bool) {
	m.muted = muted
	if m.loop == nil {
		return
	}
	switch {
	case muted:
		m.loop.Pause()
	case m.looping && !m.loop.IsPlaying():
		m.loop.Play()
	}
	m.logger.Debug("music", "muted", muted)
}

func (m *Mixer) applyVolume() {
	if m.loop != nil {
		m.loop.SetVolume(m.volume)
	}
	m.cues.ForEach(func(_ game.Cue, p player) bool {
		p.SetVolume(m.volume)
		return true
	})
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return DefaultVolume
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
