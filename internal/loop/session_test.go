package loop

import (
	"bytes"
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/bubblepop/internal/game"
	"github.com/tomz197/bubblepop/internal/input"
)

// fixedRand always returns the same value; 0.999 keeps the spawner idle.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func runWithInput(t *testing.T, data string) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	sess := NewSession(strings.NewReader(data), &out, Options{
		TermSizeFunc: fixedSize(80, 24),
		Rand:         fixedRand(0.999),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sess.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() did not return before timeout")
	}
	return sess, out.String()
}

func TestRunStopsOnQuit(t *testing.T) {
	sess, out := runWithInput(t, "q")

	if sess.Game().Phase != game.PhaseWaiting {
		t.Errorf("phase = %v, want waiting", sess.Game().Phase)
	}
	if !strings.HasPrefix(out, input.EnableMouse) {
		t.Error("output should start by enabling mouse reporting")
	}
	if !strings.Contains(out, input.DisableMouse) {
		t.Error("output should disable mouse reporting on exit")
	}
	if !strings.Contains(out, hintStart) {
		t.Error("waiting screen should show the start hint")
	}
}

func TestTapStartsGame(t *testing.T) {
	// Left press at the middle of an 80x24 terminal lands on the tutorial bubble.
	sess, _ := runWithInput(t, "\033[<0;41;13M")

	g := sess.Game()
	if g.Phase != game.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase)
	}
	if g.Points != 1 || g.Misses != 0 {
		t.Errorf("points=%d misses=%d, want 1 and 0", g.Points, g.Misses)
	}
	if sess.Summary() != nil {
		t.Error("summary should be nil before game over")
	}
}

func TestReleaseIsNotATap(t *testing.T) {
	sess, _ := runWithInput(t, "\033[<0;41;13m")

	if sess.Game().Phase != game.PhaseWaiting {
		t.Errorf("phase = %v, want waiting", sess.Game().Phase)
	}
}

func TestSpaceStartsGame(t *testing.T) {
	sess, _ := runWithInput(t, " ")

	g := sess.Game()
	if g.Phase != game.PhasePlaying || g.Points != 1 {
		t.Fatalf("phase=%v points=%d, want playing and 1", g.Phase, g.Points)
	}
}

func TestEnterStartsGame(t *testing.T) {
	sess, _ := runWithInput(t, "\r")
	if sess.Game().Phase != game.PhasePlaying {
		t.Fatalf("phase = %v, want playing", sess.Game().Phase)
	}
	if sess.Game().Misses != 0 {
		t.Errorf("misses = %d, keys must not count as taps while playing", sess.Game().Misses)
	}
}

func TestEscapeQuits(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	sess := NewSession(r, io.Discard, Options{TermSizeFunc: fixedSize(40, 20)})
	errCh := make(chan error, 1)
	go func() { errCh <- sess.Run(context.Background()) }()

	go w.Write([]byte{'\x1b'})

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after Escape")
	}
}

func TestOverlaysFollowCanvas(t *testing.T) {
	var out bytes.Buffer
	sess := NewSession(strings.NewReader(""), &out, Options{TermSizeFunc: fixedSize(80, 24)})

	sess.drawUI()
	if err := sess.chunkWriter.Flush(); err != nil {
		t.Fatal(err)
	}
	// Hint at y=-0.8 on a 24 row canvas: row 22, centered on column 41.
	want := "\033[22;" + strconv.Itoa(41-len(hintStart)/2) + "H" + hintStart
	if !strings.Contains(out.String(), want) {
		t.Errorf("output %q does not contain %q", out.String(), want)
	}
}

func TestResizeClearsScreen(t *testing.T) {
	var out bytes.Buffer
	width := 80
	sess := NewSession(strings.NewReader(""), &out, Options{
		TermSizeFunc: func() (int, int, error) { return width, 24, nil },
	})

	sess.updateScreen()
	if err := sess.chunkWriter.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("unchanged size wrote %q", out.String())
	}

	width = 100
	sess.updateScreen()
	if err := sess.chunkWriter.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\033[H\033[2J" {
		t.Errorf("resize wrote %q, want a screen clear", out.String())
	}
	if sess.canvas.TerminalWidth() != 100 {
		t.Errorf("canvas width = %d, want 100", sess.canvas.TerminalWidth())
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	sess := NewSession(r, io.Discard, Options{TermSizeFunc: fixedSize(40, 20)})
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- sess.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"small", 80, 24, 80, 24, 0, 0},
		{"wide", 200, 40, 160, 40, 20, 0},
		{"tall", 100, 70, 100, 50, 0, 10},
		{"zero", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := clampTermSize(tt.w, tt.h)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Errorf("clampTermSize(%d, %d) = %d,%d,%d,%d want %d,%d,%d,%d",
					tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestSummaryTweenSlidesIn(t *testing.T) {
	tw := newSummaryTween()
	v, done := tw.Update(0.1)
	if v <= 0 || v >= 1 || done {
		t.Errorf("partway = %v,%v want in (0,1) and not done", v, done)
	}
	v, done = tw.Update(10)
	if math.Abs(float64(v)-1) > 0.01 || !done {
		t.Errorf("end = %v,%v want ~1 and done", v, done)
	}
}
