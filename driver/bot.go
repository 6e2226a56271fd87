package driver

import (
	"time"

	"github.com/plus3/blockfall/game"
)

// Placement weights for the bot's board evaluation.
const (
	weightLines     = 0.760666
	weightHeight    = -0.510066
	weightHoles     = -0.35663
	weightBumpiness = -0.184483
)

// Bot is an intent source that plays by itself. For every new piece it picks the
// rotation and column with the best resulting board, then emits the rotations,
// the shifts and the soft drops down to the landing row, PerPoll intents at a time.
type Bot struct {
	Engine  *game.Engine
	PerPoll int
	// Restart starts a new round after a game over.
	Restart bool

	piece int
	plan  []game.Intent
	out   []game.Intent
	// Rounds counts the rounds the bot has restarted.
	Rounds int
}

func NewBot(engine *game.Engine) *Bot {
	return &Bot{Engine: engine, PerPoll: 1}
}

func (b *Bot) Poll(now time.Time) []game.Intent {
	b.out = b.out[:0]

	switch b.Engine.Phase() {
	case game.GameOver:
		if b.Restart && b.Engine.Start(now) == nil {
			b.Rounds++
			b.piece = 0
		}
		return nil
	case game.Running:
	default:
		return nil
	}

	if n := b.Engine.Pieces(); n != b.piece {
		b.piece = n
		b.plan = b.planFor()
	}

	per := max(b.PerPoll, 1)
	for len(b.out) < per && len(b.plan) > 0 {
		b.out = append(b.out, b.plan[0])
		b.plan = b.plan[1:]
	}
	return b.out
}

func (b *Bot) planFor() []game.Intent {
	piece, ok := b.Engine.Piece()
	if !ok {
		return nil
	}
	board := b.Engine.Board()

	bestScore := 0.0
	bestRot, bestX, bestY := -1, piece.X, piece.Y
	candidate := piece
	for rot := range 4 {
		for x := -game.Cols; x < game.Cols; x++ {
			c := candidate
			c.X = x
			if board.Collides(c, 0, 0) {
				continue
			}
			for !board.Collides(c, 0, 1) {
				c.Y++
			}

			score := evaluate(board, c)
			if bestRot < 0 || score > bestScore {
				bestScore, bestRot, bestX, bestY = score, rot, x, c.Y
			}
		}
		candidate = candidate.Rotated()
	}
	if bestRot < 0 {
		return []game.Intent{game.IntentSoftDrop}
	}

	plan := make([]game.Intent, 0, bestRot+game.Cols+game.Rows)
	for range bestRot {
		plan = append(plan, game.IntentRotate)
	}
	shift := game.IntentMoveRight
	dx := bestX - piece.X
	if dx < 0 {
		shift, dx = game.IntentMoveLeft, -dx
	}
	for range dx {
		plan = append(plan, shift)
	}
	for range bestY - piece.Y + 1 {
		plan = append(plan, game.IntentSoftDrop)
	}
	return plan
}

func evaluate(board game.Board, p game.Piece) float64 {
	board.Merge(p)
	lines := board.ClearFullLines()

	var heights [game.Cols]int
	holes := 0
	for col := range game.Cols {
		seen := false
		for row := range game.Rows {
			filled := board.At(col, row) != game.Empty
			if filled && !seen {
				heights[col] = game.Rows - row
				seen = true
			} else if !filled && seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumpiness += abs(h - heights[col-1])
		}
	}

	return weightLines*float64(lines) +
		weightHeight*float64(aggregate) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
