package driver

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
)

var t0 = time.Date(2024, time.November, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

type fixedPieces game.PieceType

func (f fixedPieces) IntN(int) int { return int(f) }

type scripted struct {
	batches [][]game.Intent
}

func (s *scripted) Poll(time.Time) []game.Intent {
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

type countingSink struct {
	clears, cells int
}

func (s *countingSink) Clear() { s.clears++; s.cells = 0 }
func (s *countingSink) DrawCell(int, int, color.Color) { s.cells++ }

func TestChanSource(t *testing.T) {
	src := NewChanSource(2)

	assert.True(t, src.Send(game.IntentMoveLeft))
	assert.True(t, src.Send(game.IntentRotate))
	assert.False(t, src.Send(game.IntentSoftDrop), "full buffer drops")

	assert.Equal(t, []game.Intent{game.IntentMoveLeft, game.IntentRotate}, src.Poll(t0))
	assert.Empty(t, src.Poll(t0))
}

func TestSourcesPollInOrder(t *testing.T) {
	a := &scripted{batches: [][]game.Intent{{game.IntentMoveLeft}}}
	b := &scripted{batches: [][]game.Intent{{game.IntentRotate, game.IntentSoftDrop}}}

	got := Sources{a, b}.Poll(t0)
	assert.Equal(t, []game.Intent{game.IntentMoveLeft, game.IntentRotate, game.IntentSoftDrop}, got)
}

func TestDriver(t *testing.T) {
	t.Run("intents then automatic descent", func(t *testing.T) {
		engine := game.New(game.WithRandomizer(fixedPieces(game.PieceO)))
		require.NoError(t, engine.Start(t0))
		src := &scripted{batches: [][]game.Intent{{game.IntentMoveLeft, game.IntentMoveLeft}}}
		d := New(engine, src)

		d.Step(at(16))
		p, _ := engine.Piece()
		assert.Equal(t, 2, p.X)
		assert.Equal(t, 0, p.Y)

		d.Step(at(1001))
		p, _ = engine.Piece()
		assert.Equal(t, 1, p.Y)

		applied, rejected, drops := d.Counters()
		assert.Equal(t, int64(2), applied)
		assert.Zero(t, rejected)
		assert.Equal(t, int64(1), drops)
	})

	t.Run("paused engine rejects movement", func(t *testing.T) {
		engine := game.New(game.WithRandomizer(fixedPieces(game.PieceT)))
		require.NoError(t, engine.Start(t0))
		src := &scripted{batches: [][]game.Intent{
			{game.IntentTogglePause, game.IntentMoveLeft},
			{game.IntentTogglePause},
		}}
		d := New(engine, src)

		d.Step(at(10))
		assert.Equal(t, game.Paused, engine.Phase())
		d.Step(at(5000))
		assert.Equal(t, game.Running, engine.Phase())

		applied, rejected, drops := d.Counters()
		assert.Equal(t, int64(2), applied)
		assert.Equal(t, int64(1), rejected)
		assert.Zero(t, drops, "the paused period is not made up")
	})

	t.Run("render runs after the frame", func(t *testing.T) {
		engine := game.New(game.WithRandomizer(fixedPieces(game.PieceI)))
		require.NoError(t, engine.Start(t0))
		sink := &countingSink{}
		presented := 0
		d := New(engine, Sources{}, &RenderSystem{
			Engine:  engine,
			Sink:    sink,
			Present: func() { presented++ },
		})

		d.Step(at(16))
		assert.Equal(t, 1, sink.clears)
		assert.Equal(t, 4, sink.cells)
		assert.Equal(t, 1, presented)

		stats := d.Scheduler.Stats()
		names := make([]string, 0, len(stats.Systems))
		for _, s := range stats.Systems {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"IntentSystem", "DropSystem", "RenderSystem"}, names)
	})
}

func TestBotPlansEdgeForSquareOnEmptyBoard(t *testing.T) {
	engine := game.New(game.WithRandomizer(fixedPieces(game.PieceO)))
	require.NoError(t, engine.Start(t0))
	bot := NewBot(engine)
	bot.PerPoll = 100

	plan := bot.Poll(t0)

	require.Len(t, plan, 4+game.Rows-1)
	for _, intent := range plan[:4] {
		assert.Equal(t, game.IntentMoveLeft, intent)
	}
	for _, intent := range plan[4:] {
		assert.Equal(t, game.IntentSoftDrop, intent)
	}
	assert.Empty(t, bot.Poll(t0), "plan is used up until the next piece")
}

func TestBotIdleOutsideRunning(t *testing.T) {
	engine := game.New()
	bot := NewBot(engine)
	assert.Empty(t, bot.Poll(t0))
}

func TestEvaluatePrefersClearingLines(t *testing.T) {
	var board game.Board
	for col := range 6 {
		board[game.Rows-1][col] = game.PieceS.Cell()
	}

	clear := game.NewPiece(game.PieceI)
	clear.X, clear.Y = 6, game.Rows-1
	stack := game.NewPiece(game.PieceI)
	stack.X, stack.Y = 0, game.Rows-2

	assert.InDelta(t, weightLines, evaluate(board, clear), 1e-9)
	assert.Greater(t, evaluate(board, clear), evaluate(board, stack))
	assert.Equal(t, game.PieceS.Cell(), board[game.Rows-1][0], "evaluation works on a copy")
}

func TestBotSoak(t *testing.T) {
	engine := game.New(game.WithRandomizer(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, engine.Start(t0))
	bot := NewBot(engine)
	bot.Restart = true
	d := New(engine, bot)

	maxLines := 0
	for frame := range 3000 {
		d.Step(at(frame * 16))
		maxLines = max(maxLines, engine.Lines())
	}

	assert.Greater(t, engine.Pieces()+bot.Rounds, 20)
	assert.Positive(t, maxLines)
}
