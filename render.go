package rebcore

import (
	"fmt"
	"strconv"
	"strings"
)

// Render converts a Cell back to source text, the `render` half of
// spec.md §8's round-trip laws ("render(scan(T)) == T modulo whitespace
// and comments"). It is not a full reformatter (no line-wrapping, no
// reproduction of the original literal's exact radix/case); it exists
// so the scanner's output can be round-tripped in tests and by
// `cmd/rebscan`.
func Render(c Cell) string {
	switch c.Kind() {
	case KindEnd:
		return ""
	case KindVoid:
		return ""
	case KindBlank:
		return "_"
	case KindLogic:
		if c.Logic() {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(c.Integer(), 10)
	case KindDecimal:
		return strconv.FormatFloat(c.Decimal(), 'g', -1, 64)
	case KindChar:
		return fmt.Sprintf("#%q", string(c.Char()))
	case KindPair:
		x, y := c.Pair()
		return fmt.Sprintf("%gx%g", x, y)
	case KindTime:
		return renderTime(c.TimeNanos())
	case KindDate:
		y, m, d := c.DateParts()
		return fmt.Sprintf("%d-%02d-%04d", d, m, y)
	case KindWord:
		return c.WordSymbol().String()
	case KindSetWord:
		return c.WordSymbol().String() + ":"
	case KindGetWord:
		return ":" + c.WordSymbol().String()
	case KindLitWord:
		return "'" + c.WordSymbol().String()
	case KindRefinement:
		return "/" + c.WordSymbol().String()
	case KindIssue:
		return c.WordSymbol().String()
	case KindBlock:
		return "[" + renderCells(c.Series().Cells()) + "]"
	case KindGroup:
		return "(" + renderCells(c.Series().Cells()) + ")"
	case KindPath:
		return renderPath(c.Series().Cells())
	case KindString:
		return strconv.Quote(string(c.Series().Bytes()))
	case KindBinary:
		return "#{" + fmt.Sprintf("%X", c.Series().Bytes()) + "}"
	case KindFile:
		return "%" + string(c.Series().Bytes())
	case KindURL:
		return string(c.Series().Bytes())
	case KindEmail:
		return string(c.Series().Bytes())
	case KindTag:
		return string(c.Series().Bytes())
	case KindObject:
		return "make object! [...]"
	case KindFrame:
		return "make frame! [...]"
	case KindFunction:
		return "make function! [...]"
	case KindMap:
		return "make map! [" + renderCells(c.Series().Cells()) + "]"
	case KindHandle:
		return "#[handle!]"
	case KindEvent:
		return "#[event!]"
	default:
		return fmt.Sprintf("#[%s]", c.Kind())
	}
}

func renderTime(nanos int64) string {
	neg := nanos < 0
	if neg {
		nanos = -nanos
	}
	h := nanos / 3_600_000_000_000
	nanos -= h * 3_600_000_000_000
	m := nanos / 60_000_000_000
	nanos -= m * 60_000_000_000
	s := nanos / 1_000_000_000
	frac := nanos - s*1_000_000_000
	out := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	if frac != 0 {
		out += strings.TrimRight(fmt.Sprintf(".%09d", frac), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

func renderCells(cells []Cell) string {
	var parts []string
	for _, c := range cells {
		if c.IsEnd() {
			continue
		}
		parts = append(parts, Render(c))
	}
	return strings.Join(parts, " ")
}

func renderPath(cells []Cell) string {
	var parts []string
	for _, c := range cells {
		if c.IsEnd() {
			continue
		}
		parts = append(parts, Render(c))
	}
	return strings.Join(parts, "/")
}

// RenderBlock renders a top-level Array as a space-separated sequence
// (no enclosing brackets), matching how ScanTop assembles source: an
// implicit top-level block.
func RenderBlock(a *Array) string {
	return renderCells(a.Cells())
}
