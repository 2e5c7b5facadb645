package loop

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tomz197/bubblepop/internal/game"
	"github.com/tomz197/bubblepop/internal/loop/config"
)

const (
	titleGameOver = "GAME OVER"
	hintStart     = "Click anywhere or press space to start"
	hintQuit      = "Press q or Esc to quit"
	warnInactive  = "Inactive - press any key or you will be disconnected"
)

// Overlay anchors in normalized coordinates.
const (
	hintY        = -0.8
	summaryTopY  = 0.9
	summaryRestY = 0.25
)

func newSummaryTween() *gween.Tween {
	return gween.New(0, 1, config.SummarySlideSeconds, ease.OutCubic)
}

// drawFrame renders the canvas, then the text overlays on top of it, and
// flushes everything to the terminal.
func (s *Session) drawFrame() error {
	// Overlay text is written outside the canvas diff; whenever it moves or
	// disappears the cells beneath must be repainted.
	if s.summaryTween != nil || s.isInactive != s.wasInactive {
		s.canvas.ForceRedraw()
	}
	s.wasInactive = s.isInactive

	s.canvas.Render(s.chunkWriter)
	s.canvas.RenderBorder(s.chunkWriter)
	s.drawUI()
	return s.chunkWriter.Flush()
}

func (s *Session) drawUI() {
	width := s.canvas.TerminalWidth()
	center, _ := s.canvas.NDCToTerminal(0, 0)

	switch s.game.Phase {
	case game.PhaseWaiting:
		_, row := s.canvas.NDCToTerminal(0, hintY)
		s.chunkWriter.WriteCentered(center, row, hintStart)
	case game.PhasePlaying:
		s.drawHUD(width)
	case game.PhaseDead:
		s.drawSummary(center)
	}

	if s.isInactive {
		s.chunkWriter.WriteCentered(center, 2, warnInactive)
	}
}

// drawHUD prints the running score in the top-right corner, on the row of
// the life indicators drawn on the canvas.
func (s *Session) drawHUD(width int) {
	text := fmt.Sprintf("Points: %d  Misses: %d", s.game.Points, s.game.Misses)
	_, slotY := game.LifeSlot(0)
	_, row := s.canvas.NDCToTerminal(0, slotY)
	s.chunkWriter.WriteAt(width-len(text)-1, row, text)
}

// drawSummary slides the game-over panel from the top edge towards the middle
// of the playfield.
func (s *Session) drawSummary(center int) {
	sum := s.game.Summary
	if sum == nil {
		return
	}
	y := summaryTopY + (summaryRestY-summaryTopY)*float64(s.summarySlide)
	_, row := s.canvas.NDCToTerminal(0, y)

	s.chunkWriter.WriteCentered(center, row, titleGameOver)
	s.chunkWriter.WriteCentered(center, row+2, sum.String())
	s.chunkWriter.WriteCentered(center, row+4, hintQuit)
}
