package termui

import "github.com/firesight/fireviz/internal/app"

// decoder turns a raw terminal byte stream into viewer events and pointer
// updates. Escape sequences may arrive split across reads, so undecoded
// bytes are buffered between feeds.
type decoder struct {
	buf []byte

	events   []app.Event
	pointerX int // in cells; -1 until the first mouse report
	pointerY int
}

func newDecoder() *decoder {
	return &decoder{pointerX: -1, pointerY: -1}
}

// feed consumes a chunk of input bytes, accumulating decoded events.
func (d *decoder) feed(p []byte) {
	d.buf = append(d.buf, p...)
	for {
		n := d.decodeOne()
		if n == 0 {
			return
		}
		d.buf = d.buf[n:]
	}
}

// drain returns the events decoded so far and clears them.
func (d *decoder) drain() []app.Event {
	events := d.events
	d.events = nil
	return events
}

// decodeOne decodes a single key or mouse sequence from the front of the
// buffer and returns how many bytes it consumed. Zero means more input is
// needed (an incomplete escape sequence stays buffered).
func (d *decoder) decodeOne() int {
	if len(d.buf) == 0 {
		return 0
	}

	b := d.buf[0]
	if b != 0x1b {
		switch b {
		case 'q', 'Q', 3: // q, Q, or Ctrl-C
			d.events = append(d.events, app.EventQuit)
		case 'j':
			d.events = append(d.events, app.EventScrollDown)
		case 'k':
			d.events = append(d.events, app.EventScrollUp)
		}
		return 1
	}

	// A bare escape (no continuation byte yet) quits; real sequences always
	// arrive with their continuation in the same read under raw mode.
	if len(d.buf) == 1 {
		d.events = append(d.events, app.EventQuit)
		return 1
	}
	if d.buf[1] != '[' {
		d.events = append(d.events, app.EventQuit)
		return 1
	}
	if len(d.buf) < 3 {
		return 0
	}

	if d.buf[2] == '<' {
		return d.decodeMouse()
	}

	switch d.buf[2] {
	case 'A':
		d.events = append(d.events, app.EventScrollUp)
	case 'B':
		d.events = append(d.events, app.EventScrollDown)
	case 'C':
		d.events = append(d.events, app.EventNextSeason)
	case 'D':
		d.events = append(d.events, app.EventPrevSeason)
	}
	return 3
}

// decodeMouse parses an SGR mouse report: ESC [ < code ; col ; row (M|m).
// Motion reports move the pointer; wheel reports scroll.
func (d *decoder) decodeMouse() int {
	end := -1
	for i := 3; i < len(d.buf); i++ {
		if d.buf[i] == 'M' || d.buf[i] == 'm' {
			end = i
			break
		}
	}
	if end == -1 {
		return 0
	}

	code, col, row, ok := splitMouseParams(d.buf[3:end])
	if ok {
		switch {
		case code == 64:
			d.events = append(d.events, app.EventScrollUp)
		case code == 65:
			d.events = append(d.events, app.EventScrollDown)
		default:
			// Button and motion reports carry the position either way.
			d.pointerX, d.pointerY = col-1, row-1
		}
	}
	return end + 1
}

// splitMouseParams parses "code;col;row" from an SGR report body.
func splitMouseParams(body []byte) (code, col, row int, ok bool) {
	nums := [3]int{}
	idx := 0
	seen := false
	for _, b := range body {
		switch {
		case b >= '0' && b <= '9':
			nums[idx] = nums[idx]*10 + int(b-'0')
			seen = true
		case b == ';' && idx < 2:
			idx++
		default:
			return 0, 0, 0, false
		}
	}
	if idx != 2 || !seen {
		return 0, 0, 0, false
	}
	return nums[0], nums[1], nums[2], true
}
