package audio

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/blockfall/game"
)

// SampleRate is the rate every generated clip is rendered at.
const SampleRate = 44100

// note is one sine segment of a clip.
type note struct {
	freq  float64
	dur   float64
	amp   float64
	decay float64
}

var cueNotes = map[game.Cue][]note{
	game.CueMove:   {{freq: 440, dur: 0.05, amp: 4000, decay: 30}},
	game.CueRotate: {{freq: 660, dur: 0.06, amp: 4000, decay: 25}},
	game.CueDrop:   {{freq: 196, dur: 0.12, amp: 6000, decay: 20}},
	game.CueClear: {
		{freq: 880, dur: 0.08, amp: 5000, decay: 8},
		{freq: 1108.73, dur: 0.08, amp: 5000, decay: 8},
		{freq: 1318.51, dur: 0.16, amp: 5000, decay: 6},
	},
}

var loopNotes = []float64{329.63, 246.94, 261.63, 293.66, 261.63, 246.94, 220.00, 220.00,
	261.63, 329.63, 293.66, 261.63, 246.94, 261.63, 293.66, 329.63}

// render writes the notes back to back as 16-bit little endian stereo PCM.
func render(notes []note) []byte {
	total := 0
	for _, n := range notes {
		total += int(SampleRate * n.dur)
	}

	buf := make([]byte, 0, total*4)
	for _, n := range notes {
		samples := int(SampleRate * n.dur)
		for i := range samples {
			t := float64(i) / SampleRate
			envelope := math.Exp(-n.decay * t)
			v := int16(math.Sin(2*math.Pi*n.freq*t) * n.amp * envelope)
			for range 2 {
				buf = append(buf, byte(v), byte(v>>8))
			}
		}
	}
	return buf
}

func cueClip(cue game.Cue) []byte {
	return render(cueNotes[cue])
}

func loopClip() []byte {
	notes := make([]note, len(loopNotes))
	for i, freq := range loopNotes {
		notes[i] = note{freq: freq, dur: 0.3, amp: 1800, decay: 2}
	}
	return render(notes)
}

// newLoopPlayer wraps the background clip in an infinite loop.
func newLoopPlayer(ctx *audio.Context) (*audio.Player, error) {
	clip := loopClip()
	src := audio.NewInfiniteLoop(bytes.NewReader(clip), int64(len(clip)))
	return ctx.NewPlayer(src)
}
