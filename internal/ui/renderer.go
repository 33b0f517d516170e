package ui

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/geom"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) (*Renderer, error) {
	if screen == nil {
		return nil, errors.New("renderer requires a screen")
	}
	return &Renderer{screen: screen}, nil
}

// Render draws the screen for the snapshot's phase
func (r *Renderer) Render(s game.Snapshot) {
	switch s.Phase {
	case game.PhaseMainMenu:
		r.RenderMenu(s)
	case game.PhasePlaying, game.PhasePaused:
		r.RenderGame(s)
	case game.PhaseGameOver:
		r.RenderGameOver(s)
	}
}

// RenderMenu displays the title screen with the difficulty selection
func (r *Renderer) RenderMenu(s game.Snapshot) {
	r.screen.Clear()
	_, screenH := r.screen.Size()
	mid := screenH / 2

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawCentered(mid-3, "PING PONG", titleStyle)
	r.screen.DrawCentered(mid, "Press Enter to Start", tcell.StyleDefault.Foreground(tcell.ColorWhite))

	diffText := fmt.Sprintf("Difficulty: %s (Press D to change)", s.Difficulty)
	r.screen.DrawCentered(mid+2, diffText, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	r.screen.DrawCentered(screenH-2, "W/S or arrows to move, P to pause, Esc to quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderGame displays the court, and the pause banner when paused
func (r *Renderer) RenderGame(s game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Court coordinates are scaled into the rows between the two status bars
	scaleX := float64(screenW) / s.CourtWidth
	scaleY := float64(screenH-2) / s.CourtHeight

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(s, screenW)

	r.drawRect(s.PlayerPaddle, scaleX, scaleY, tcell.StyleDefault.Foreground(PlayerColor), PaddleChar)
	r.drawRect(s.AIPaddle, scaleX, scaleY, tcell.StyleDefault.Foreground(AIColor), PaddleChar)
	r.drawRect(s.Ball, scaleX, scaleY, tcell.StyleDefault.Foreground(BallColor), BallChar)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" %s | First to %d wins", s.Difficulty, s.ScoreToWin)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	if s.Phase == game.PhasePaused {
		r.renderPauseBanner(screenW, screenH)
	}

	r.screen.Show()
}

// renderScoreboard draws both scores on the top row
func (r *Renderer) renderScoreboard(s game.Snapshot, screenW int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, 0, style, ' ')
	}

	playerText := fmt.Sprintf("Player: %d", s.PlayerScore)
	r.screen.DrawText(1, 0, playerText, style.Foreground(PlayerColor))

	aiText := fmt.Sprintf("AI: %d", s.AIScore)
	r.screen.DrawText(screenW-len(aiText)-1, 0, aiText, style.Foreground(AIColor))
}

// renderPauseBanner draws a boxed message over the middle of the court
func (r *Renderer) renderPauseBanner(screenW, screenH int) {
	text := "PAUSED - Press P to continue"
	boxW := len(text) + 4
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fillStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(boxY+2, text, fillStyle.Foreground(tcell.ColorWhite).Bold(true))
}

// drawRect fills the cells covered by a court rectangle, at least one cell
// in each direction so small entities stay visible
func (r *Renderer) drawRect(rect geom.Rect, scaleX, scaleY float64, style tcell.Style, ch rune) {
	_, screenH := r.screen.Size()

	x0 := int(math.Floor(rect.Left() * scaleX))
	x1 := int(math.Ceil(rect.Right() * scaleX))
	y0 := int(math.Floor(rect.Top()*scaleY)) + 1 // +1 for top status bar
	y1 := int(math.Ceil(rect.Bottom()*scaleY)) + 1
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		if y < 1 || y >= screenH-1 {
			continue
		}
		for x := x0; x < x1; x++ {
			r.screen.SetCell(x, y, style, ch)
		}
	}
}

// RenderGameOver displays the winner and final score
func (r *Renderer) RenderGameOver(s game.Snapshot) {
	r.screen.Clear()
	_, screenH := r.screen.Size()
	mid := screenH / 2

	winner := "AI Wins!"
	if s.PlayerWon() {
		winner = "You Win!"
	}
	r.screen.DrawCentered(mid-4, winner, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	scoreText := fmt.Sprintf("Final Score - Player: %d | AI: %d", s.PlayerScore, s.AIScore)
	r.screen.DrawCentered(mid-1, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.DrawCentered(mid+3, "Press Enter to play again", tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.Show()
}
