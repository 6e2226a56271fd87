package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	blog "github.com/plus3/blockfall/log"
)

const (
	baseDropInterval = time.Second
	pointsPerLine    = 100
	pointsPerLevel   = 1000
)

// ErrSessionActive is returned by Start while a round is running or paused.
var ErrSessionActive = errors.New("game: session already active")

// Engine owns one game session: board, falling piece, score and phase.
// It is not safe for concurrent use; a single driver loop calls into it.
type Engine struct {
	id     uuid.UUID
	board  Board
	piece  Piece
	phase  Phase
	score  int
	level  int
	lines  int
	pieces int

	dropInterval time.Duration
	lastDrop     time.Time

	audio    AudioSink
	rand     Randomizer
	listener Listener
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

func WithAudio(sink AudioSink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.audio = sink
		}
	}
}

// WithRandomizer makes piece sequences reproducible.
func WithRandomizer(r Randomizer) Option {
	return func(e *Engine) {
		if r != nil {
			e.rand = r
		}
	}
}

func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine in the NotStarted phase with an empty board.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:           uuid.New(),
		phase:        NotStarted,
		level:        1,
		dropInterval: baseDropInterval,
		audio:        nopAudio{},
		rand:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = blog.Logger()
	}
	e.logger = e.logger.With("session", e.id.String()[:8])
	return e
}

// Start begins a new round. It is valid before the first round and after a game over.
func (e *Engine) Start(now time.Time) error {
	if e.phase == Running || e.phase == Paused {
		return ErrSessionActive
	}

	e.board = Board{}
	e.score = 0
	e.level = 1
	e.lines = 0
	e.pieces = 0
	e.dropInterval = baseDropInterval
	e.lastDrop = now
	e.spawn()
	e.setPhase(Running)

	e.audio.PlayLoop()
	e.emit(EventStarted)
	e.emit(EventScore)
	return nil
}

// Tick performs an automatic descent step once more than DropInterval has
// elapsed since the last one. It reports whether a step was taken.
func (e *Engine) Tick(now time.Time) bool {
	if e.phase != Running {
		return false
	}
	if now.Sub(e.lastDrop) <= e.dropInterval {
		return false
	}

	e.descend(now)
	e.lastDrop = now
	return true
}

// Apply dispatches an input intent, dropping it when the current phase does not accept it.
func (e *Engine) Apply(intent Intent, now time.Time) bool {
	if !e.phase.AcceptsIntent(intent) {
		return false
	}

	switch intent {
	case IntentMoveLeft:
		return e.MoveLeft()
	case IntentMoveRight:
		return e.MoveRight()
	case IntentSoftDrop:
		return e.SoftDrop(now) != Ignored
	case IntentRotate:
		return e.Rotate()
	case IntentTogglePause:
		return e.TogglePause(now)
	default:
		return false
	}
}

func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if e.phase != Running || e.board.Collides(e.piece, dx, 0) {
		return false
	}

	e.piece.X += dx
	e.audio.Play(CueMove)
	return true
}

// Rotate turns the piece clockwise in place, keeping the old shape when the
// rotated one would collide. There is no kick search.
func (e *Engine) Rotate() bool {
	if e.phase != Running {
		return false
	}

	rotated := e.piece.Rotated()
	if e.board.Collides(rotated, 0, 0) {
		return false
	}

	e.piece = rotated
	e.audio.Play(CueRotate)
	return true
}

// SoftDrop moves the piece down one row, landing it when the row below is blocked.
func (e *Engine) SoftDrop(now time.Time) DropResult {
	if e.phase != Running {
		return Ignored
	}
	return e.descend(now)
}

func (e *Engine) descend(now time.Time) DropResult {
	if !e.board.Collides(e.piece, 0, 1) {
		e.piece.Y++
		e.lastDrop = now
		return StillFalling
	}

	e.land()
	return Landed
}

func (e *Engine) land() {
	e.board.Merge(e.piece)
	e.audio.Play(CueDrop)

	if cleared := e.board.ClearFullLines(); cleared > 0 {
		e.audio.Play(CueClear)
		e.award(cleared)
	}

	e.spawn()
	if e.board.Collides(e.piece, 0, 0) {
		e.setPhase(GameOver)
		e.audio.StopLoop()
		e.emit(EventGameOver)
	}
}

// award scores a clear at the current level, then levels up at most once.
func (e *Engine) award(cleared int) {
	e.lines += cleared
	e.score += cleared * pointsPerLine * e.level
	if e.score >= e.level*pointsPerLevel {
		e.level++
		e.dropInterval = baseDropInterval / time.Duration(e.level)
	}
	e.emit(EventScore)
}

func (e *Engine) spawn() {
	e.piece = Spawn(e.rand)
	e.pieces++
}

// TogglePause flips between Running and Paused. Resuming moves the drop baseline
// to now so time spent paused never turns into a burst of forced drops.
func (e *Engine) TogglePause(now time.Time) bool {
	switch e.phase {
	case Running:
		e.setPhase(Paused)
		e.emit(EventPaused)
	case Paused:
		e.lastDrop = now
		e.setPhase(Running)
		e.emit(EventResumed)
	default:
		return false
	}
	return true
}

// Render draws the board and then the falling piece. It only reads state, so
// the last frame stays visible while paused or after a game over.
func (e *Engine) Render(sink RenderSink) {
	sink.Clear()
	for row := range e.board {
		for col, cell := range e.board[row] {
			if cell != Empty {
				sink.DrawCell(col, row, PieceType(cell-1).Color())
			}
		}
	}

	if e.phase == NotStarted {
		return
	}
	c := e.piece.Type.Color()
	for _, pos := range e.piece.Cells() {
		sink.DrawCell(pos[0], pos[1], c)
	}
}

func (e *Engine) setPhase(p Phase) {
	e.logger.Debug("phase change", "from", e.phase, "to", p, "score", e.score, "level", e.level)
	e.phase = p
}

func (e *Engine) emit(kind EventKind) {
	if e.listener == nil {
		return
	}
	e.listener.OnEvent(Event{Kind: kind, Score: e.score, Level: e.level, Lines: e.lines})
}

func (e *Engine) ID() uuid.UUID { return e.id }

func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Score() int { return e.score }

func (e *Engine) Level() int { return e.level }

// Lines is the number of rows cleared this round.
func (e *Engine) Lines() int { return e.lines }

// Pieces is the number of pieces spawned this round, including the current one.
func (e *Engine) Pieces() int { return e.pieces }

func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Board returns a copy of the landed cells.
func (e *Engine) Board() Board { return e.board }

// Piece returns a copy of the falling piece; ok is false before the first round.
func (e *Engine) Piece() (Piece, bool) {
	if e.phase == NotStarted {
		return Piece{}, false
	}
	return e.piece.Clone(), true
}
