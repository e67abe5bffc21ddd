package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a byte position inside the source text.
type Cursor struct {
	src   string
	Off   uint32
	limit uint32
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{src: src, limit: limit}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 returns the current and the next byte, ok=false if either is missing.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump advances one byte and returns the byte it stepped over.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor forward n bytes, clamped to the end of input.
func (c *Cursor) Advance(n int) {
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("advance overflow: %w", err))
	}
	if c.Off+un > c.limit {
		c.Off = c.limit
		return
	}
	c.Off += un
}

// Mark remembers a position so a lexeme can be sliced out later.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// TextFrom returns the source between m and the current position.
func (c *Cursor) TextFrom(m Mark) string {
	return c.src[m:c.Off]
}

// Rest returns the unread suffix of the source.
func (c *Cursor) Rest() string {
	return c.src[c.Off:]
}
