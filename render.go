package mj

import (
	"fmt"
	"io"
	"strings"

	"github.com/amterp/color"
)

// SprintfFuncer is an interface wrapper around the color package. It yields
// a fmt.Sprintf-style function that wraps its result in ANSI escape codes,
// letting any color configuration be plugged into a Formatter.
type SprintfFuncer interface {
	SprintfFunc() func(format string, a ...interface{}) string
}

// DefaultIndent is the number of spaces per nesting level in pretty output.
const DefaultIndent = 3

// Default color settings per token category. Each default forces color
// emission on, so rendered output is deterministic regardless of whether
// stdout is a terminal; TTY gating belongs to the caller.
var (
	// DefaultKeyColor styles object keys. Default is bold blue.
	DefaultKeyColor = newRenderColor(color.FgBlue, color.Bold)
	// DefaultStringColor styles string values. Default is green.
	DefaultStringColor = newRenderColor(color.FgGreen)
	// DefaultNumberColor styles numbers. Default is cyan.
	DefaultNumberColor = newRenderColor(color.FgCyan)
	// DefaultBoolColor styles true and false. Default is yellow.
	DefaultBoolColor = newRenderColor(color.FgYellow)
	// DefaultNullColor styles null. Default is bold red.
	DefaultNullColor = newRenderColor(color.FgRed, color.Bold)
	// DefaultPunctColor styles structural punctuation. Default is bold.
	DefaultPunctColor = newRenderColor(color.Bold)
)

func newRenderColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Formatter holds the configuration for rendering a Value. The zero value
// renders pretty, uncolored output with the default indent width.
type Formatter struct {
	// Minify removes all whitespace outside string contents.
	Minify bool
	// Color applies a distinct ANSI style per token category. It is an
	// overlay only and never changes whitespace decisions.
	Color bool
	// Indent is the number of spaces per nesting level in pretty output.
	// Zero means DefaultIndent.
	Indent int
	// EscapeHTML additionally escapes <, >, and & inside strings using
	// \u00XX sequences. Off by default: output passes non-ASCII and HTML
	// characters through unmodified.
	EscapeHTML bool

	// Per-category colors. A nil field falls back to the corresponding
	// Default*Color.
	KeyColor    SprintfFuncer
	StringColor SprintfFuncer
	NumberColor SprintfFuncer
	BoolColor   SprintfFuncer
	NullColor   SprintfFuncer
	PunctColor  SprintfFuncer
}

// NewFormatter returns a Formatter with all defaults.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) keyColor() SprintfFuncer {
	if f.KeyColor != nil {
		return f.KeyColor
	}
	return DefaultKeyColor
}

func (f *Formatter) stringColor() SprintfFuncer {
	if f.StringColor != nil {
		return f.StringColor
	}
	return DefaultStringColor
}

func (f *Formatter) numberColor() SprintfFuncer {
	if f.NumberColor != nil {
		return f.NumberColor
	}
	return DefaultNumberColor
}

func (f *Formatter) boolColor() SprintfFuncer {
	if f.BoolColor != nil {
		return f.BoolColor
	}
	return DefaultBoolColor
}

func (f *Formatter) nullColor() SprintfFuncer {
	if f.NullColor != nil {
		return f.NullColor
	}
	return DefaultNullColor
}

func (f *Formatter) punctColor() SprintfFuncer {
	if f.PunctColor != nil {
		return f.PunctColor
	}
	return DefaultPunctColor
}

func (f *Formatter) indentWidth() int {
	if f.Indent > 0 {
		return f.Indent
	}
	return DefaultIndent
}

// Render renders v according to f. Same value and same formatter always
// yield byte-identical output. A nil formatter uses all defaults.
func Render(v Value, f *Formatter) string {
	if f == nil {
		f = NewFormatter()
	}
	rs := newRenderState(f)
	if f.Minify {
		rs.minified(v)
	} else {
		rs.pretty(v, 0)
	}
	return rs.buf.String()
}

// Format renders v according to f and writes it to dst. Rendering itself
// cannot fail; the only error source is the writer.
func (f *Formatter) Format(dst io.Writer, v Value) error {
	_, err := io.WriteString(dst, Render(v, f))
	return err
}

type sprintfFunc func(format string, a ...interface{}) string

// renderState walks a Value tree and accumulates output. The color
// functions are nil when color is off, so the structural logic never
// branches on presentation.
type renderState struct {
	buf        strings.Builder
	width      int
	escapeHTML bool

	key     sprintfFunc
	str     sprintfFunc
	num     sprintfFunc
	boolean sprintfFunc
	null    sprintfFunc
	punct   sprintfFunc
}

func newRenderState(f *Formatter) *renderState {
	rs := &renderState{
		width:      f.indentWidth(),
		escapeHTML: f.EscapeHTML,
	}
	if f.Color {
		rs.key = f.keyColor().SprintfFunc()
		rs.str = f.stringColor().SprintfFunc()
		rs.num = f.numberColor().SprintfFunc()
		rs.boolean = f.boolColor().SprintfFunc()
		rs.null = f.nullColor().SprintfFunc()
		rs.punct = f.punctColor().SprintfFunc()
	}
	return rs
}

func (rs *renderState) span(fn sprintfFunc, s string) {
	if fn == nil {
		rs.buf.WriteString(s)
		return
	}
	rs.buf.WriteString(fn("%s", s))
}

func (rs *renderState) indent(n int) {
	for i := 0; i < n; i++ {
		rs.buf.WriteByte(' ')
	}
}

func (rs *renderState) scalar(v Value) {
	switch val := v.(type) {
	case Null:
		rs.span(rs.null, "null")
	case Bool:
		if val {
			rs.span(rs.boolean, "true")
		} else {
			rs.span(rs.boolean, "false")
		}
	case Number:
		rs.span(rs.num, val.Literal)
	case String:
		rs.span(rs.str, quoteString(string(val), rs.escapeHTML))
	}
}

// pretty renders v with members one per line. Container openers are
// written in place (after a key or element indent already emitted by the
// caller), so the indent argument only governs the members and the closer.
func (rs *renderState) pretty(v Value, indent int) {
	switch val := v.(type) {
	case Array:
		if len(val) == 0 {
			rs.span(rs.punct, "[]")
			return
		}
		rs.span(rs.punct, "[")
		rs.buf.WriteByte('\n')
		for i, el := range val {
			rs.indent(indent + rs.width)
			rs.pretty(el, indent+rs.width)
			if i != len(val)-1 {
				rs.span(rs.punct, ",")
			}
			rs.buf.WriteByte('\n')
		}
		rs.indent(indent)
		rs.span(rs.punct, "]")
	case Object:
		if len(val) == 0 {
			rs.span(rs.punct, "{}")
			return
		}
		rs.span(rs.punct, "{")
		rs.buf.WriteByte('\n')
		for i, m := range val {
			rs.indent(indent + rs.width)
			rs.span(rs.key, quoteString(m.Key, rs.escapeHTML))
			rs.span(rs.punct, ":")
			rs.buf.WriteByte(' ')
			rs.pretty(m.Value, indent+rs.width)
			if i != len(val)-1 {
				rs.span(rs.punct, ",")
			}
			rs.buf.WriteByte('\n')
		}
		rs.indent(indent)
		rs.span(rs.punct, "}")
	default:
		rs.scalar(v)
	}
}

func (rs *renderState) minified(v Value) {
	switch val := v.(type) {
	case Array:
		rs.span(rs.punct, "[")
		for i, el := range val {
			rs.minified(el)
			if i != len(val)-1 {
				rs.span(rs.punct, ",")
			}
		}
		rs.span(rs.punct, "]")
	case Object:
		rs.span(rs.punct, "{")
		for i, m := range val {
			rs.span(rs.key, quoteString(m.Key, rs.escapeHTML))
			rs.span(rs.punct, ":")
			rs.minified(m.Value)
			if i != len(val)-1 {
				rs.span(rs.punct, ",")
			}
		}
		rs.span(rs.punct, "}")
	default:
		rs.scalar(v)
	}
}

// quoteString re-encodes decoded string contents as a JSON string literal.
// Control characters, quotes, and backslashes are escaped; everything else
// passes through as-is unless escapeHTML is set.
func quoteString(s string, escapeHTML bool) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '<', '>', '&':
			if escapeHTML {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
