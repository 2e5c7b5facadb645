package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomz197/bubblepop/internal/object"
)

// Canvas is a truecolor drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in normalized device coordinates:
// x and y in [-1, 1] cover the whole render area, +y pointing up.
type Canvas struct {
	termWidth      int   // Render area columns
	termHeight     int   // Render area rows
	subPixelHeight int   // termHeight * 2
	pixels         []rgb // Flat slice: [y * termWidth + x]

	// Offset for centering the render area when the terminal is larger than the
	// max resolution. 0-based terminal columns/rows to skip.
	offsetCol int
	offsetRow int

	prev      []cell // Last rendered cells, for diffing
	renderBuf strings.Builder
	numBuf    [20]byte
}

type rgb struct {
	R, G, B float64
}

// cell is a quantized terminal cell: top and bottom sub-pixel colors.
type cell struct {
	top, bottom [3]uint8
	valid       bool
}

// NewCanvas creates a canvas covering a termWidth x termHeight render area.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions. A size change forces
// a full redraw on the next Render.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]rgb, c.subPixelHeight*termWidth)
	c.prev = make([]cell, termWidth*termHeight)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// TerminalWidth returns the render area column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Clear resets all pixels to black.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// pixelToNDC returns the normalized coordinates of a sub-pixel center.
func (c *Canvas) pixelToNDC(px, py int) (x, y float64) {
	x = (float64(px)+0.5)/float64(c.termWidth)*2 - 1
	y = 1 - (float64(py)+0.5)/float64(c.subPixelHeight)*2
	return x, y
}

// ndcToPixel maps normalized coordinates to fractional sub-pixel coordinates.
func (c *Canvas) ndcToPixel(x, y float64) (px, py float64) {
	px = (x + 1) / 2 * float64(c.termWidth)
	py = (1 - y) / 2 * float64(c.subPixelHeight)
	return px, py
}

// pixelSize is the larger of the horizontal and vertical sub-pixel extents in NDC.
func (c *Canvas) pixelSize() float64 {
	return max(2/float64(c.termWidth), 2/float64(c.subPixelHeight))
}

// CellToNDC converts a 0-based terminal cell (including the centering offset)
// to normalized coordinates at the cell center. ok is false outside the render area.
func (c *Canvas) CellToNDC(col, row int) (x, y float64, ok bool) {
	col -= c.offsetCol
	row -= c.offsetRow
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return 0, 0, false
	}
	x = (float64(col)+0.5)/float64(c.termWidth)*2 - 1
	y = 1 - (float64(row)+0.5)/float64(c.termHeight)*2
	return x, y, true
}

// NDCToTerminal converts normalized coordinates to a 1-based terminal position
// (col, row) relative to the render area, for placing text overlays.
func (c *Canvas) NDCToTerminal(x, y float64) (col, row int) {
	px, py := c.ndcToPixel(x, y)
	return int(px) + 1, int(py)/2 + 1
}

// bounds returns the sub-pixel bounding box of a circle of radius r at (x,y),
// clipped to the canvas.
func (c *Canvas) bounds(x, y, r float64) (x0, y0, x1, y1 int) {
	left, top := c.ndcToPixel(x-r, y+r)
	right, bottom := c.ndcToPixel(x+r, y-r)
	x0 = max(int(math.Floor(left)), 0)
	y0 = max(int(math.Floor(top)), 0)
	x1 = min(int(math.Ceil(right)), c.termWidth-1)
	y1 = min(int(math.Ceil(bottom)), c.subPixelHeight-1)
	return x0, y0, x1, y1
}

func (c *Canvas) blend(px, py int, col rgb, a float64) {
	if a <= 0 {
		return
	}
	a = min(a, 1)
	p := &c.pixels[py*c.termWidth+px]
	p.R = col.R*a + p.R*(1-a)
	p.G = col.G*a + p.G*(1-a)
	p.B = col.B*a + p.B*(1-a)
}

// DrawCircle draws a soft-edged disc. Opacity falls off toward the rim at a
// rate set by sharpness; the tint shifts with the offset from the center.
func (c *Canvas) DrawCircle(x, y, r, sharpness float64) {
	if r <= 0 || sharpness <= 0 {
		return
	}
	x0, y0, x1, y1 := c.bounds(x, y, r)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			nx, ny := c.pixelToNDC(px, py)
			u, v := (nx-x)/r, (ny-y)/r
			a := clamp01((1 - math.Hypot(u, v)) * sharpness)
			c.blend(px, py, rgb{R: clamp01(u), G: clamp01(v), B: 1}, a)
		}
	}
}

// DrawRing draws a ring of the given width. Rings are never thinner than one
// sub-pixel so small echoes stay visible.
func (c *Canvas) DrawRing(x, y, r, width float64, col object.Color) {
	if r <= 0 || col.A <= 0 {
		return
	}
	half := max(width/2, c.pixelSize()/2)
	x0, y0, x1, y1 := c.bounds(x, y, r+half)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			nx, ny := c.pixelToNDC(px, py)
			if math.Abs(math.Hypot(nx-x, ny-y)-r) <= half {
				c.blend(px, py, rgb{R: col.R, G: col.G, B: col.B}, col.A)
			}
		}
	}
}

// Ensure Canvas satisfies the renderer contract.
var _ object.Renderer = (*Canvas)(nil)

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func quantize(p rgb) [3]uint8 {
	return [3]uint8{
		uint8(math.Round(clamp01(p.R) * 255)),
		uint8(math.Round(clamp01(p.G) * 255)),
		uint8(math.Round(clamp01(p.B) * 255)),
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the previous Render using
// half-block characters with truecolor foreground (top) and background (bottom).
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			cur := cell{
				top:    quantize(c.pixels[topOffset+col]),
				bottom: quantize(c.pixels[bottomOffset+col]),
				valid:  true,
			}
			idx := row*c.termWidth + col
			if c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			c.writeCell(row, col, cur)
		}
	}
	if c.renderBuf.Len() > 0 {
		c.renderBuf.WriteString("\033[0m")
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) writeCell(row, col int, cl cell) {
	b := &c.renderBuf
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	b.WriteByte('H')

	if cl.top == ([3]uint8{}) && cl.bottom == ([3]uint8{}) {
		b.WriteString("\033[0m ")
		return
	}
	b.WriteString("\033[38;2")
	c.writeRGB(cl.top)
	b.WriteString(";48;2")
	c.writeRGB(cl.bottom)
	b.WriteByte('m')
	b.WriteRune(BlockUpperHalf)
}

func (c *Canvas) writeRGB(v [3]uint8) {
	for _, ch := range v {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(ch), 10))
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.termWidth)
	if hasV {
		if hasH {
			buf.WriteString(cursor(top, left) + "┌" + line + "┐")
			buf.WriteString(cursor(bottom, left) + "└" + line + "┘")
		} else {
			buf.WriteString(cursor(top, c.offsetCol+1) + line)
			buf.WriteString(cursor(bottom, c.offsetCol+1) + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf.WriteString(cursor(row, left) + "│" + cursor(row, right) + "│")
		}
	}
	io.WriteString(w, buf.String())
}

func cursor(row, col int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
