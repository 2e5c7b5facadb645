// Package loop drives one game session: it paces frames, feeds terminal input
// into the game, ticks the simulation and renders the result.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tomz197/bubblepop/internal/draw"
	"github.com/tomz197/bubblepop/internal/game"
	"github.com/tomz197/bubblepop/internal/input"
	"github.com/tomz197/bubblepop/internal/loop/config"
	"github.com/tomz197/bubblepop/internal/object"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Params       game.Params
	Rand         object.Rand // Nil seeds from the clock
	Inactivity   bool        // Warn and disconnect idle users
}

// Session handles rendering and input for a single player.
type Session struct {
	game         *game.State
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	inactivity   bool

	running     bool
	input       input.Input
	lastInput   time.Time
	isInactive  bool
	wasInactive bool
	prevPhase   game.Phase

	summaryTween *gween.Tween
	summarySlide float32 // 0..1 progress of the summary panel sliding in
}

// NewSession creates a session reading input from r and drawing to w.
func NewSession(r io.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	params := opts.Params
	if params == (game.Params{}) {
		params = game.DefaultParams()
	}

	gameOpts := []game.Option{game.WithParams(params), game.WithLogger(logger)}
	if opts.Rand != nil {
		gameOpts = append(gameOpts, game.WithRand(opts.Rand))
	}
	g := game.New(gameOpts...)

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Session{
		game:         g,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		inactivity:   opts.Inactivity,
		running:      true,
		lastInput:    time.Now(),
		prevPhase:    g.Phase,
	}
}

// Game exposes the session's game state.
func (s *Session) Game() *game.State {
	return s.game
}

// Summary returns the end-of-game summary, or nil if the game has not ended.
func (s *Session) Summary() *game.Summary {
	return s.game.Summary
}

// Run starts the frame loop. It blocks until the player quits, the input
// stream ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	io.WriteString(s.writer, input.EnableMouse)
	draw.HideCursor(s.writer)
	draw.ClearScreen(s.writer)
	defer func() {
		io.WriteString(s.writer, input.DisableMouse)
		draw.ShowCursor(s.writer)
		draw.ClearScreen(s.writer)
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()

	var lastTime time.Time
	for s.running {
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled", "err", ctx.Err())
			return nil
		case <-timer.C:
		}

		frameStart := time.Now()
		var dt float64
		if !lastTime.IsZero() {
			dt = frameStart.Sub(lastTime).Seconds()
		}
		lastTime = frameStart

		if err := s.frame(dt); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		timer.Reset(max(config.TargetFrameTime-elapsed, 0))
	}
	return nil
}

// frame runs one iteration: input, resize, simulation and drawing.
func (s *Session) frame(dt float64) error {
	s.processInput()
	s.updateScreen()

	s.canvas.Clear()
	s.game.Tick(dt, s.canvas)
	s.drawLives()

	s.updatePhase(dt)
	return s.drawFrame()
}

// processInput drains pending input and routes taps into the game. Taps are
// resolved immediately against the bubbles of the last completed tick.
func (s *Session) processInput() {
	s.input = input.ReadInput(s.inputStream)
	if s.inputStream.Closed() {
		s.running = false
	}

	if len(s.input.Pressed) > 0 {
		s.lastInput = time.Now()
		s.isInactive = false
	} else if s.inactivity {
		idle := time.Since(s.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			s.logger.Info("disconnecting inactive session")
			s.running = false
		} else if idle > config.InactivityWarnUser {
			s.isInactive = true
		}
	}

	if s.input.Quit || s.input.Escape {
		s.running = false
	}

	// Keyboard players start the game by popping the tutorial bubble.
	if s.game.Phase == game.PhaseWaiting && (s.input.Space || s.input.Enter) {
		res := s.game.Tap(0, 0)
		s.logger.Debug("key start", "result", res)
	}

	for _, tap := range s.input.Taps {
		x, y, ok := s.canvas.CellToNDC(tap.Col, tap.Row)
		if !ok {
			continue
		}
		res := s.game.Tap(x, y)
		s.logger.Debug("tap", "x", x, "y", y, "result", res)
	}
}

// updateScreen handles terminal resize, clamping to the max render resolution.
// On actual size changes the terminal is cleared to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.chunkWriter)
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max(termWidth-renderWidth, 0) / 2
	offsetRow = max(termHeight-renderHeight, 0) / 2
	return
}

// drawLives paints one indicator per remaining life in the HUD slots.
func (s *Session) drawLives() {
	for i := 0; i < s.game.Lives; i++ {
		x, y := game.LifeSlot(i)
		s.canvas.DrawCircle(x, y, config.LifeIndicatorRadius, config.LifeIndicatorSharpness)
	}
}

// updatePhase reacts to phase changes and advances the summary slide-in.
func (s *Session) updatePhase(dt float64) {
	phase := s.game.Phase
	if phase != s.prevPhase {
		s.logger.Debug("phase changed", "from", s.prevPhase, "to", phase)
		draw.ClearScreen(s.chunkWriter)
		s.canvas.ForceRedraw()
		if phase == game.PhaseDead {
			s.summaryTween = newSummaryTween()
			s.summarySlide = 0
		}
		s.prevPhase = phase
	}

	if s.summaryTween == nil {
		return
	}
	progress, done := s.summaryTween.Update(float32(dt))
	s.summarySlide = progress
	if done {
		s.summaryTween = nil
	}
}
