package strbuild

import (
	"fmt"
	"strings"
)

// Builder accumulates the textual form of appended values. The zero value is
// ready to use. A Builder must not be copied after first use.
type Builder struct {
	sb strings.Builder
}

// New creates a Builder holding the concatenation of vs.
func New(vs ...any) *Builder {
	b := &Builder{}
	for _, v := range vs {
		b.Add(v)
	}
	return b
}

// Of returns the concatenation of the textual forms of vs.
// Unlike fmt.Sprint, no spaces are ever inserted between operands.
func Of(vs ...any) string { return New(vs...).String() }

// Add appends the textual form of v and returns b for chaining.
func (b *Builder) Add(v any) *Builder {
	if s, ok := v.(string); ok {
		b.sb.WriteString(s)
	} else {
		fmt.Fprint(&b.sb, v)
	}
	return b
}

// Addf appends the result of fmt.Sprintf(format, args...) and returns b.
func (b *Builder) Addf(format string, args ...any) *Builder {
	fmt.Fprintf(&b.sb, format, args...)
	return b
}

// Write appends p. It implements [io.Writer] and never fails.
func (b *Builder) Write(p []byte) (int, error) { return b.sb.Write(p) }

// WriteString appends s. It implements [io.StringWriter] and never fails.
func (b *Builder) WriteString(s string) (int, error) { return b.sb.WriteString(s) }

// String returns everything appended so far. Reading does not reset the
// builder; calling String twice yields the same value.
func (b *Builder) String() string { return b.sb.String() }

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int { return b.sb.Len() }

// Reset discards the accumulated content.
func (b *Builder) Reset() { b.sb.Reset() }
