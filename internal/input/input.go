// Package input turns a raw terminal byte stream into per-frame input: a few
// keys and mouse taps reported through SGR mouse sequences.
package input

import (
	"bufio"
	"io"
)

// Mouse reporting control sequences: button events (1000) with SGR encoding (1006).
const (
	EnableMouse  = "\033[?1000h\033[?1006h"
	DisableMouse = "\033[?1006l\033[?1000l"
)

// maxSGRLen bounds how far the parser scans for a mouse sequence terminator.
const maxSGRLen = 32

// Tap is a left-button press at a 0-based terminal cell.
type Tap struct {
	Col, Row int
}

// Input is everything that arrived since the previous frame.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Escape  bool
	Taps    []Tap
	Pressed []byte // Raw bytes, used for inactivity tracking
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	carry   []byte // Incomplete escape sequence from the previous read
	escHeld bool   // carry is a lone ESC held back for one read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error (including io.EOF).
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking and
// parses them. A mouse sequence split across reads is kept for the next call.
func ReadInput(s *Stream) Input {
	buf := s.carry
	s.carry = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	// A trailing ESC may be the first byte of a mouse sequence whose rest has
	// not reached the channel yet. Report it only if nothing follows it on
	// the next read.
	if in.Escape && !s.closed && !s.escHeld {
		in.Escape = false
		s.escHeld = true
		s.carry = []byte{'\x1b'}
		return in
	}
	s.escHeld = false
	if len(rest) > 0 && !s.closed {
		s.carry = append([]byte(nil), rest...)
	}
	return in
}

// Parse decodes buf. rest holds a trailing, possibly incomplete, escape
// sequence that the caller may retry once more bytes arrive.
func Parse(buf []byte) (in Input, rest []byte) {
	in.Pressed = buf
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' && buf[i+2] == '<' {
			n, tap, press, complete := parseSGRMouse(buf[i:])
			if !complete {
				return in, buf[i:]
			}
			if press {
				in.Taps = append(in.Taps, tap)
			}
			i += n - 1
			continue
		}
		if b == '\x1b' && i+2 >= len(buf) && i+1 < len(buf) && buf[i+1] == '[' {
			return in, buf[i:]
		}

		applyByte(&in, b, i+1 == len(buf))
	}
	return in, nil
}

// applyByte maps a single byte to a key. A lone ESC counts as Escape only at
// the end of the buffer, otherwise it is the start of an unsupported sequence.
func applyByte(in *Input, b byte, last bool) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case '\x1b':
		if last {
			in.Escape = true
		}
	}
}

// parseSGRMouse parses ESC [ < Btn ; Col ; Row (M|m). It returns the number of
// bytes consumed, the tap position, whether it was a left-button press, and
// whether the sequence was complete.
func parseSGRMouse(data []byte) (n int, tap Tap, press bool, complete bool) {
	end := 3
	for end < len(data) && end < maxSGRLen {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		if len(data) >= maxSGRLen {
			// Garbage: skip the introducer and carry on.
			return 3, Tap{}, false, true
		}
		return 0, Tap{}, false, false
	}
	if data[end] != 'M' && data[end] != 'm' {
		return 3, Tap{}, false, true
	}

	btn, col, row, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Tap{}, false, true
	}

	// Bits 0-1: button (0=left); bit 5: motion; bit 6: wheel.
	isLeft := btn&0x03 == 0 && btn&(32|64) == 0
	press = isLeft && data[end] == 'M'
	return end + 1, Tap{Col: col - 1, Row: row - 1}, press, true
}

// parseSGRParams parses "Btn;Col;Row" as three non-negative integers.
func parseSGRParams(p []byte) (btn, col, row int, ok bool) {
	var vals [3]int
	idx := 0
	digits := 0
	for _, c := range p {
		switch {
		case c >= '0' && c <= '9':
			vals[idx] = vals[idx]*10 + int(c-'0')
			digits++
		case c == ';':
			if digits == 0 || idx == 2 {
				return 0, 0, 0, false
			}
			idx++
			digits = 0
		default:
			return 0, 0, 0, false
		}
	}
	if idx != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}
