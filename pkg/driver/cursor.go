package driver

// Cursor walks the argument vector. Every consumption rule of the
// dispatcher goes through Peek and Advance.
type Cursor struct {
	args []string
	pos  int
}

// NewCursor returns a cursor on the first of args.
func NewCursor(args []string) *Cursor {
	return &Cursor{args: args}
}

// Peek returns the token n positions ahead of the current one; Peek(0) is
// the current token. ok is false past the end.
func (c *Cursor) Peek(n int) (string, bool) {
	i := c.pos + n
	if n < 0 || i >= len(c.args) {
		return "", false
	}
	return c.args[i], true
}

// Advance consumes n tokens, stopping at the end of the vector.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.args) {
		c.pos = len(c.args)
	}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.args)
}
