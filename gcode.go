package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Command is one output line of motion text, with the index of the Move
// that produced it. Structural lines (preamble/postamble) carry -1; a Move
// whose target state is already current produces no Command at all.
type Command struct {
	text string
	move int
}

// FormatNumber quantizes to the configured precision and strips redundant
// trailing zeros and any dangling decimal point. -0 comes out as 0.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// emitter holds the shadow tool state used for command deduplication. It
// tracks the same {xy, z, feed} the planner does, but independently: a
// planner bug can produce redundant moves, it can't produce redundant
// commands.
type emitter struct {
	options *Options

	x    float64
	y    float64
	z    float64
	feed float64

	commands []Command
}

func newEmitter(opt *Options) *emitter {
	return &emitter{
		options: opt,
		x:       math.NaN(),
		y:       math.NaN(),
		z:       math.NaN(),
	}
}

func (e *emitter) num(v float64) string {
	return FormatNumber(v, e.options.precision)
}

func (e *emitter) line(move int, format string, args ...interface{}) {
	e.commands = append(e.commands, Command{
		text: fmt.Sprintf(format, args...),
		move: move,
	})
}

func (e *emitter) preamble() {
	opt := e.options

	e.line(-1, "%%")
	e.line(-1, "(%s)", opt.comment)
	e.line(-1, "(T1 D=%s - flat end mill)", e.num(opt.toolDiameter))
	e.line(-1, "G90")
	e.line(-1, "G94")
	e.line(-1, "G17")
	e.line(-1, "G20")
	e.line(-1, "G40")
	e.line(-1, "G49")
	e.line(-1, "G54")
	e.line(-1, "G0 Z%s", e.num(opt.safeZ))
	e.z = opt.safeZ
}

func (e *emitter) postamble() {
	e.line(-1, "M30")
	e.line(-1, "%%")
}

func (e *emitter) xyEquals(x, y float64) bool {
	return !math.IsNaN(e.x) && !math.IsNaN(e.y) && e.x == x && e.y == y
}

func (e *emitter) zEquals(z float64) bool {
	return !math.IsNaN(e.z) && e.z == z
}

func (e *emitter) emit(idx int, m *Move) {
	switch m.kind {
	case MoveRetract:
		if e.zEquals(m.z) {
			return
		}
		e.line(idx, "G0 Z%s", e.num(m.z))
		e.z = m.z

	case MoveRapidXY:
		if e.xyEquals(m.x, m.y) {
			return
		}
		e.line(idx, "G0 X%s Y%s", e.num(m.x), e.num(m.y))
		e.x = m.x
		e.y = m.y

	case MovePlunge:
		if e.zEquals(m.z) {
			return
		}
		if m.feed != 0 && m.feed != e.feed {
			e.line(idx, "G1 Z%s F%s", e.num(m.z), e.num(m.feed))
			e.feed = m.feed
		} else {
			e.line(idx, "G1 Z%s", e.num(m.z))
		}
		e.z = m.z

	case MoveSetFeedXY:
		if m.feed == e.feed {
			return
		}
		e.line(idx, "F%s", e.num(m.feed))
		e.feed = m.feed

	case MoveCutLine:
		if e.xyEquals(m.x, m.y) {
			return
		}
		e.line(idx, "G1 X%s Y%s", e.num(m.x), e.num(m.y))
		e.x = m.x
		e.y = m.y

	case MoveCutArc:
		// arcs are never elided: a full circle returns to its start point,
		// so an endpoint-only comparison would wrongly drop it
		word := "G2"
		if m.ccw {
			word = "G3"
		}
		e.line(idx, "%s X%s Y%s I%s J%s", word, e.num(m.x), e.num(m.y), e.num(m.i), e.num(m.j))
		e.x = m.x
		e.y = m.y
	}
}

// EmitCommands serializes the move list into the output command stream.
// Re-running it over the same moves produces identical text.
func EmitCommands(moves []Move, opt *Options) []Command {
	e := newEmitter(opt)
	e.preamble()
	for i := range moves {
		e.emit(i, &moves[i])
	}
	e.postamble()
	return e.commands
}

// CommandText joins the command stream into the final program text.
func CommandText(commands []Command) string {
	text := strings.Builder{}
	for i := range commands {
		text.WriteString(commands[i].text)
		text.WriteByte('\n')
	}
	return text.String()
}
