// Package termui renders the viewer onto an ANSI terminal. It is the bundled
// rendering backend: the 800x800 logical canvas is scaled onto the terminal's
// cell grid, circles and bars become colored blocks, and SGR mouse reports
// drive hover and wheel scrolling. Any backend implementing render.Surface
// and app.Input can replace it.
package termui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/firesight/fireviz/internal/app"
	"github.com/firesight/fireviz/internal/render"
)

const (
	enterAltScreen = "\x1b[?1049h\x1b[?25l\x1b[?1003h\x1b[?1006h"
	leaveAltScreen = "\x1b[?1006l\x1b[?1003l\x1b[?25h\x1b[?1049l"
)

type cell struct {
	r  rune
	fg render.Color
}

// Driver is a terminal-backed Surface and Input. All Surface calls happen on
// the frame loop's goroutine; only the input pump runs concurrently, feeding
// the decoder under its own lock.
type Driver struct {
	out  *os.File
	cols int
	rows int

	// logical pixels per cell, derived from the terminal size
	cellW int
	cellH int

	grid []cell

	mu      sync.Mutex
	decoder *decoder

	oldState *term.State
}

// New puts the terminal into raw mode, switches to the alternate screen with
// mouse tracking, and starts the input pump. It fails when stdin is not a
// terminal.
func New() (*Driver, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	if cols < 40 || rows < 20 {
		return nil, fmt.Errorf("terminal too small: %dx%d, need at least 40x20", cols, rows)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	d := &Driver{
		out:      os.Stdout,
		cols:     cols,
		rows:     rows,
		cellW:    (render.CanvasWidth + cols - 1) / cols,
		cellH:    (render.CanvasHeight + rows - 1) / rows,
		grid:     make([]cell, cols*rows),
		decoder:  newDecoder(),
		oldState: oldState,
	}
	fmt.Fprint(d.out, enterAltScreen)

	go d.pumpInput()
	return d, nil
}

// Close restores the terminal. Safe to call once after the loop exits.
func (d *Driver) Close() error {
	fmt.Fprint(d.out, leaveAltScreen)
	return term.Restore(int(os.Stdin.Fd()), d.oldState)
}

// pumpInput reads stdin until it closes, feeding the decoder.
func (d *Driver) pumpInput() {
	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		d.mu.Lock()
		d.decoder.feed(buf[:n])
		d.mu.Unlock()
	}
}

// Poll drains the events decoded since the last frame.
func (d *Driver) Poll() []app.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.decoder.drain()
}

// Pointer returns the pointer position in logical canvas coordinates,
// centered within the hovered cell.
func (d *Driver) Pointer() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.decoder.pointerX < 0 {
		return -1, -1
	}
	return d.decoder.pointerX*d.cellW + d.cellW/2,
		d.decoder.pointerY*d.cellH + d.cellH/2
}

// Fonts returns the cell-metric fonts for the theme. Both sizes render
// identically on a terminal; only their metrics matter for layout.
func (d *Driver) Fonts() (small, label render.Font) {
	f := monoFont{cellW: d.cellW, cellH: d.cellH}
	return f, f
}

// monoFont measures text in logical pixels: one cell per rune.
type monoFont struct {
	cellW, cellH int
}

func (f monoFont) Size(text string) (int, int) {
	return len([]rune(text)) * f.cellW, f.cellH
}

// --- render.Surface ---

func (d *Driver) Fill(c render.Color) {
	for i := range d.grid {
		d.grid[i] = cell{r: ' ', fg: c}
	}
}

func (d *Driver) FillRect(x, y, w, h int, c render.Color) {
	d.fillCells(x, y, w, h, '█', c)
}

func (d *Driver) DrawLine(x1, y1, x2, y2, thickness int, c render.Color) {
	// The viewer only draws axis-aligned lines (panel rules and outlines).
	if y1 == y2 {
		d.fillCells(min(x1, x2), y1, abs(x2-x1), max(thickness, 1), '─', c)
		return
	}
	d.fillCells(x1, min(y1, y2), max(thickness, 1), abs(y2-y1), '│', c)
}

func (d *Driver) DrawCircle(x, y, radius int, c render.Color) {
	for py := y - radius; py <= y+radius; py += d.cellH {
		for px := x - radius; px <= x+radius; px += d.cellW {
			dx, dy := px-x, py-y
			if dx*dx+dy*dy <= radius*radius {
				d.set(px/d.cellW, py/d.cellH, '●', c)
			}
		}
	}
}

func (d *Driver) DrawText(text string, _ render.Font, c render.Color, x, y int) {
	col, row := x/d.cellW, y/d.cellH
	for i, r := range text {
		d.set(col+i, row, r, c)
	}
}

func (d *Driver) Blit(b render.Bitmap, x, y int) {
	w, h := b.Size()
	// Terminal cells cannot show the bitmap itself; draw its footprint as a
	// dim field so markers still land in a visible map area.
	d.fillCells(x, y, w, h, '·', render.Color{R: 120, G: 120, B: 120})
}

func (d *Driver) LoadBitmap(path string) (render.Bitmap, error) {
	// The county map's only role in layout is its footprint; its pixel data
	// never reaches the terminal. Missing files are still surfaced.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load bitmap %s: %w", path, err)
	}
	return mapFootprint{w: 400, h: 480}, nil
}

// Present writes the grid as one ANSI frame.
func (d *Driver) Present() error {
	var sb strings.Builder
	sb.Grow(len(d.grid) * 12)
	sb.WriteString("\x1b[H")

	last := -1
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			c := d.grid[row*d.cols+col]
			if idx := ansi256(c.fg); idx != last {
				fmt.Fprintf(&sb, "\x1b[38;5;%dm", idx)
				last = idx
			}
			if c.r == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.r)
			}
		}
		if row < d.rows-1 {
			sb.WriteString("\r\n")
		}
	}

	_, err := d.out.WriteString(sb.String())
	return err
}

// mapFootprint is the logical-size stand-in for the county map image.
type mapFootprint struct {
	w, h int
}

func (m mapFootprint) Size() (int, int) { return m.w, m.h }

// fillCells fills the cell region covering a logical-pixel rectangle.
func (d *Driver) fillCells(x, y, w, h int, r rune, c render.Color) {
	for py := y; py < y+h; py += d.cellH {
		for px := x; px < x+w; px += d.cellW {
			d.set(px/d.cellW, py/d.cellH, r, c)
		}
	}
}

func (d *Driver) set(col, row int, r rune, c render.Color) {
	if col < 0 || col >= d.cols || row < 0 || row >= d.rows {
		return
	}
	d.grid[row*d.cols+col] = cell{r: r, fg: c}
}

// ansi256 maps an RGB color to the xterm 256-color cube.
func ansi256(c render.Color) int {
	r := int(c.R) * 5 / 255
	g := int(c.G) * 5 / 255
	b := int(c.B) * 5 / 255
	return 16 + 36*r + 6*g + b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
