package override

import (
	"strconv"
	"strings"

	"github.com/limenime/limeass/literal"
)

// Position returns the (x, y) pair from a \pos(x,y) or \org(x,y) tag.
func (t Tag) Position() (x, y float64, ok bool) {
	if (t.Name != "pos" && t.Name != "org") || len(t.Args) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(t.Args[0].Atom), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(t.Args[1].Atom), 64)
	return x, y, errX == nil && errY == nil
}

// Move is the decoded form of a \move(x1,y1,x2,y2[,t1,t2]) tag.
type Move struct {
	X1, Y1, X2, Y2 float64
	HasTiming      bool
	T1, T2         int
}

// Move decodes a \move tag's arguments.
func (t Tag) Move() (Move, bool) {
	if t.Name != "move" || (len(t.Args) != 4 && len(t.Args) != 6) {
		return Move{}, false
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(t.Args[i].Atom), 64)
		if err != nil {
			return Move{}, false
		}
		vals[i] = v
	}
	m := Move{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}
	if len(t.Args) == 6 {
		t1, err1 := strconv.Atoi(strings.TrimSpace(t.Args[4].Atom))
		t2, err2 := strconv.Atoi(strings.TrimSpace(t.Args[5].Atom))
		if err1 != nil || err2 != nil {
			return Move{}, false
		}
		m.HasTiming = true
		m.T1, m.T2 = t1, t2
	}
	return m, true
}

// Color decodes a bare color/alpha tag (\1c, \2c, \3c, \4c, \c, \1a, \2a,
// \3a, \4a, \alpha) using the ASS BGR literal grammar.
func (t Tag) Color() (literal.Color, bool) {
	switch t.Name {
	case "1c", "2c", "3c", "4c", "c", "1a", "2a", "3a", "4a", "alpha":
	default:
		return literal.Color{}, false
	}
	if len(t.Args) != 1 || t.Args[0].IsNested {
		return literal.Color{}, false
	}
	c, err := literal.ParseColor(t.Args[0].Atom)
	if err != nil {
		return literal.Color{}, false
	}
	return c, true
}

// Fade is the decoded form of \fad(in,out) or \fade(a1,a2,a3,t1,t2,t3,t4).
type Fade struct {
	Simple          bool
	InMs, OutMs     int
	A1, A2, A3      int
	T1, T2, T3, T4  int
}

// Fade decodes a \fad/\fade tag's arguments.
func (t Tag) Fade() (Fade, bool) {
	ints := make([]int, len(t.Args))
	for i, a := range t.Args {
		if a.IsNested {
			return Fade{}, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(a.Atom))
		if err != nil {
			return Fade{}, false
		}
		ints[i] = n
	}

	switch {
	case t.Name == "fad" && len(ints) == 2:
		return Fade{Simple: true, InMs: ints[0], OutMs: ints[1]}, true
	case t.Name == "fade" && len(ints) == 7:
		return Fade{
			A1: ints[0], A2: ints[1], A3: ints[2],
			T1: ints[3], T2: ints[4], T3: ints[5], T4: ints[6],
		}, true
	default:
		return Fade{}, false
	}
}

// Clip is the decoded form of \clip/\iclip, either a rectangle
// (x1,y1,x2,y2) or a scaled vector-clip drawing string.
type Clip struct {
	Inverted           bool
	Rect               bool
	X1, Y1, X2, Y2     float64
	Scale              int
	Drawing            string
}

// Clip decodes a \clip or \iclip tag's arguments.
func (t Tag) Clip() (Clip, bool) {
	if t.Name != "clip" && t.Name != "iclip" {
		return Clip{}, false
	}
	c := Clip{Inverted: t.Name == "iclip"}

	switch len(t.Args) {
	case 4:
		vals := make([]float64, 4)
		for i := range vals {
			v, err := strconv.ParseFloat(strings.TrimSpace(t.Args[i].Atom), 64)
			if err != nil {
				return Clip{}, false
			}
			vals[i] = v
		}
		c.Rect = true
		c.X1, c.Y1, c.X2, c.Y2 = vals[0], vals[1], vals[2], vals[3]
		return c, true
	case 1:
		c.Scale = 1
		c.Drawing = t.Args[0].Atom
		return c, true
	case 2:
		scale, err := strconv.Atoi(strings.TrimSpace(t.Args[0].Atom))
		if err != nil {
			return Clip{}, false
		}
		c.Scale = scale
		c.Drawing = t.Args[1].Atom
		return c, true
	default:
		return Clip{}, false
	}
}

// Karaoke reports the centisecond duration from a \k, \kf, or \ko tag.
// \kt is absolute from the event start rather than a duration, and is
// reported the same numeric way; callers distinguish it via t.Name.
func (t Tag) Karaoke() (centiseconds int, ok bool) {
	switch t.Name {
	case "k", "kf", "ko", "kt":
	default:
		return 0, false
	}
	n, ok := t.BareNumber()
	return n, ok
}
