package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(types ...PieceType) (*Engine, *recordingAudio, *recordingListener) {
	audio := &recordingAudio{}
	listener := &recordingListener{}
	e := New(
		WithAudio(audio),
		WithRandomizer(newSequence(types...)),
		WithListener(listener),
	)
	return e, audio, listener
}

func TestNewEngine(t *testing.T) {
	e, _, _ := newTestEngine(PieceT)

	assert.Equal(t, NotStarted, e.Phase())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, time.Second, e.DropInterval())
	board := e.Board()
	assert.True(t, board.IsEmpty())
	_, ok := e.Piece()
	assert.False(t, ok)
	assert.NotEqual(t, e.ID(), New().ID(), "sessions are independent")
}

func TestStart(t *testing.T) {
	e, audio, listener := newTestEngine(PieceT)

	require.NoError(t, e.Start(t0))

	assert.Equal(t, Running, e.Phase())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, time.Second, e.DropInterval())
	assert.Equal(t, 1, audio.loops)
	assert.Equal(t, []EventKind{EventStarted, EventScore}, listener.kinds())

	p, ok := e.Piece()
	require.True(t, ok)
	assert.Equal(t, PieceT, p.Type)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 1, e.Pieces())

	assert.ErrorIs(t, e.Start(t0), ErrSessionActive)
	e.TogglePause(t0)
	assert.ErrorIs(t, e.Start(t0), ErrSessionActive)
}

func TestTickWaitsForDropInterval(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))

	assert.False(t, e.Tick(at(500)))
	assert.False(t, e.Tick(at(1000)), "the interval has to be exceeded, not reached")
	assert.True(t, e.Tick(at(1001)))

	p, _ := e.Piece()
	assert.Equal(t, 1, p.Y)

	assert.False(t, e.Tick(at(2000)))
	assert.True(t, e.Tick(at(2002)))
	p, _ = e.Piece()
	assert.Equal(t, 2, p.Y)
}

func TestTickAppliesOneStepAfterLongGap(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))

	assert.True(t, e.Tick(at(10_000)))
	assert.False(t, e.Tick(at(10_001)))

	p, _ := e.Piece()
	assert.Equal(t, 1, p.Y)
}

func TestTickIgnoredOutsideRunning(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)
	assert.False(t, e.Tick(at(5000)))

	require.NoError(t, e.Start(t0))
	require.True(t, e.TogglePause(at(100)))
	assert.False(t, e.Tick(at(5000)))
}

func TestSoftDropResetsDropTimer(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))

	assert.Equal(t, StillFalling, e.SoftDrop(at(900)))
	assert.False(t, e.Tick(at(1500)))
	assert.True(t, e.Tick(at(1901)))

	p, _ := e.Piece()
	assert.Equal(t, 2, p.Y)
}

func TestMoveLeftRight(t *testing.T) {
	e, audio, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))

	for range 3 {
		assert.True(t, e.MoveLeft())
	}
	assert.False(t, e.MoveLeft(), "the left wall blocks")
	p, _ := e.Piece()
	assert.Equal(t, 0, p.X)
	assert.Equal(t, []Cue{CueMove, CueMove, CueMove}, audio.cues)

	for range 6 {
		assert.True(t, e.MoveRight())
	}
	assert.False(t, e.MoveRight(), "the right wall blocks")
	p, _ = e.Piece()
	assert.Equal(t, Cols-4, p.X)
	assert.Len(t, audio.cues, 9)
}

func TestMoveBlockedByLandedCells(t *testing.T) {
	e, audio, _ := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))
	e.board[0][3] = PieceZ.Cell()

	assert.False(t, e.MoveLeft())
	assert.Empty(t, audio.cues)
}

func TestRotate(t *testing.T) {
	e, audio, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))

	assert.True(t, e.Rotate())
	p, _ := e.Piece()
	assert.Equal(t, Shape{{1}, {1}, {1}, {1}}, p.Shape)
	assert.Equal(t, []Cue{CueRotate}, audio.cues)
}

func TestRotateRejectedOnCollision(t *testing.T) {
	e, audio, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))
	e.board[2][3] = PieceJ.Cell()

	assert.False(t, e.Rotate())

	p, _ := e.Piece()
	assert.Equal(t, Shape{{1, 1, 1, 1}}, p.Shape, "shape reverts")
	assert.Equal(t, 3, p.X)
	assert.Empty(t, audio.cues)
}

func TestRotateAtWallHasNoKick(t *testing.T) {
	e, _, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))
	require.True(t, e.Rotate())
	for e.MoveRight() {
	}

	p, _ := e.Piece()
	require.Equal(t, Cols-1, p.X)
	assert.False(t, e.Rotate(), "horizontal I would stick out of the right wall")
}

func TestPauseBlocksInputAndResumeResetsBaseline(t *testing.T) {
	e, audio, listener := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))

	require.True(t, e.Apply(IntentTogglePause, at(500)))
	assert.Equal(t, Paused, e.Phase())

	for _, intent := range []Intent{IntentMoveLeft, IntentMoveRight, IntentRotate, IntentSoftDrop} {
		assert.False(t, e.Apply(intent, at(600)), "%v while paused", intent)
	}
	assert.False(t, e.MoveLeft())
	assert.False(t, e.Rotate())
	assert.Equal(t, Ignored, e.SoftDrop(at(600)))
	assert.Empty(t, audio.cues)

	require.True(t, e.Apply(IntentTogglePause, at(10_000)))
	assert.Equal(t, Running, e.Phase())

	assert.False(t, e.Tick(at(10_500)), "no backlog from the paused period")
	assert.True(t, e.Tick(at(11_001)))
	p, _ := e.Piece()
	assert.Equal(t, 1, p.Y)

	assert.Equal(t, []EventKind{EventStarted, EventScore, EventPaused, EventResumed}, listener.kinds())
}

func TestTogglePauseOutsideRound(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)

	assert.False(t, e.TogglePause(t0))
	assert.False(t, e.Apply(IntentTogglePause, t0))
	assert.Equal(t, NotStarted, e.Phase())
}

func TestDriveToFloorAndMerge(t *testing.T) {
	e, audio, _ := newTestEngine(PieceT, PieceO)
	require.NoError(t, e.Start(t0))

	var last Piece
	steps := 0
	for {
		p, _ := e.Piece()
		if e.SoftDrop(at(steps)) == Landed {
			last = p
			break
		}
		steps++
		require.Less(t, steps, Rows, "piece never landed")
	}

	assert.Equal(t, Rows-2, steps)
	assert.Equal(t, Rows-2, last.Y)
	var probe Board
	assert.False(t, probe.Collides(last, 0, 0), "last valid position")
	assert.True(t, probe.Collides(last, 0, 1), "collision only one row down")

	board := e.Board()

	for _, pos := range last.Cells() {
		assert.Equal(t, Cell(PieceT+1), board.At(pos[0], pos[1]))
	}
	assert.Equal(t, []Cue{CueDrop}, audio.cues)

	next, _ := e.Piece()
	assert.Equal(t, PieceO, next.Type)
	assert.Equal(t, 0, next.Y)
	assert.Equal(t, Running, e.Phase())
}

func TestLandingClearsTwoLinesAtLevelOne(t *testing.T) {
	e, audio, listener := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))
	fillRow(&e.board, Rows-1, PieceL.Cell(), 4, 5)
	fillRow(&e.board, Rows-2, PieceJ.Cell(), 4, 5)

	for e.SoftDrop(t0) != Landed {
	}

	assert.Equal(t, 200, e.Score())
	assert.Equal(t, 2, e.Lines())
	assert.Equal(t, 1, e.Level())
	board := e.Board()
	assert.True(t, board.IsEmpty())
	assert.Equal(t, []Cue{CueDrop, CueClear}, audio.cues)

	last := listener.events[len(listener.events)-1]
	assert.Equal(t, Event{Kind: EventScore, Score: 200, Level: 1, Lines: 2}, last)
}

func TestScoreScalesWithLevel(t *testing.T) {
	e, _, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))
	e.level = 3
	e.dropInterval = time.Second / 3
	fillRow(&e.board, Rows-1, PieceS.Cell(), 3, 4, 5, 6)

	for e.SoftDrop(t0) != Landed {
	}

	assert.Equal(t, 300, e.Score())
	assert.Equal(t, 3, e.Level())
}

func TestLevelUp(t *testing.T) {
	e, _, _ := newTestEngine(PieceI)
	require.NoError(t, e.Start(t0))
	e.score = 950
	fillRow(&e.board, Rows-1, PieceS.Cell(), 3, 4, 5, 6)

	for e.SoftDrop(t0) != Landed {
	}

	assert.Equal(t, 1050, e.Score())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, 500*time.Millisecond, e.DropInterval())
}

func TestAwardLevelsUpOncePerClear(t *testing.T) {
	e, _, _ := newTestEngine(PieceI)
	e.level = 1
	e.score = 2900

	e.award(1)

	assert.Equal(t, 3000, e.Score())
	assert.Equal(t, 2, e.Level())
}

func TestGameOver(t *testing.T) {
	e, audio, listener := newTestEngine(PieceO)
	require.NoError(t, e.Start(t0))
	e.score = 400

	// park the current piece on the floor, away from the spawn columns
	e.piece.X = 0
	e.piece.Y = Rows - 2
	e.board[0][4] = PieceZ.Cell()
	e.board[0][5] = PieceZ.Cell()

	assert.Equal(t, Landed, e.SoftDrop(at(10)))
	assert.Equal(t, GameOver, e.Phase())
	assert.Equal(t, 1, audio.stops)

	last := listener.events[len(listener.events)-1]
	assert.Equal(t, EventGameOver, last.Kind)
	assert.Equal(t, 400, last.Score)

	before := e.Board()
	assert.False(t, e.Tick(at(60_000)))
	for _, intent := range []Intent{IntentMoveLeft, IntentMoveRight, IntentRotate, IntentSoftDrop, IntentTogglePause} {
		assert.False(t, e.Apply(intent, at(60_000)))
	}
	assert.Equal(t, before, e.Board(), "nothing mutates the board after game over")

	require.NoError(t, e.Start(at(70_000)))
	assert.Equal(t, Running, e.Phase())
	assert.Equal(t, 0, e.Score())
	board := e.Board()
	assert.True(t, board.IsEmpty())
	assert.Equal(t, 2, audio.loops)
}

func TestRender(t *testing.T) {
	e, _, _ := newTestEngine(PieceO)
	sink := &recordingSink{}

	e.Render(sink)
	assert.Equal(t, 1, sink.clears)
	assert.Empty(t, sink.cells)

	require.NoError(t, e.Start(t0))
	e.board[Rows-1][0] = PieceL.Cell()
	e.Render(sink)

	require.Len(t, sink.cells, 5)
	assert.Equal(t, drawnCell{Col: 0, Row: Rows - 1, Color: PieceL.Color()}, sink.cells[0], "board before piece")
	for _, cell := range sink.cells[1:] {
		assert.Equal(t, PieceO.Color(), cell.Color)
		assert.Contains(t, []int{4, 5}, cell.Col)
		assert.Contains(t, []int{0, 1}, cell.Row)
	}

	e.TogglePause(t0)
	e.Render(sink)
	assert.Len(t, sink.cells, 5, "paused frames still show the board and piece")
}
