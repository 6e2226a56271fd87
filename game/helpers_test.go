package game

import (
	"image/color"
	"time"
)

var t0 = time.Date(2024, time.November, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

// sequence hands out piece types in order, wrapping around.
type sequence struct {
	types []PieceType
	next  int
}

func newSequence(types ...PieceType) *sequence {
	return &sequence{types: types}
}

func (s *sequence) IntN(n int) int {
	t := s.types[s.next%len(s.types)]
	s.next++
	return int(t) % n
}

type recordingAudio struct {
	cues  []Cue
	loops int
	stops int
}

func (r *recordingAudio) Play(cue Cue) { r.cues = append(r.cues, cue) }
func (r *recordingAudio) PlayLoop() { r.loops++ }
func (r *recordingAudio) StopLoop() { r.stops++ }

type drawnCell struct {
	Col, Row int
	Color    color.Color
}

type recordingSink struct {
	clears int
	cells  []drawnCell
}

func (r *recordingSink) Clear() {
	r.clears++
	r.cells = r.cells[:0]
}

func (r *recordingSink) DrawCell(col, row int, c color.Color) {
	r.cells = append(r.cells, drawnCell{Col: col, Row: row, Color: c})
}

type recordingListener struct {
	events []Event
}

func (r *recordingListener) OnEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recordingListener) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// fillRow marks every column of row except the listed gaps.
func fillRow(b *Board, row int, cell Cell, gaps ...int) {
	for col := range Cols {
		b[row][col] = cell
	}
	for _, col := range gaps {
		b[row][col] = Empty
	}
}
