package cli

import (
	"fmt"
	"io"
)

// column is the wrap state of one fixed-width column during a print call.
type column struct {
	width int
	rest  []rune
	done  bool
}

// cut takes the next segment off the column. A newline inside the first
// width characters ends the segment and is dropped; otherwise the segment
// ends at the last space at or before width (the space is dropped), or is
// hard cut at width when a single word is longer than the column.
func (c *column) cut() string {
	if c.done {
		return ""
	}

	s := c.rest
	limit := c.width
	if len(s) < limit {
		limit = len(s)
	}
	for j := 0; j < limit; j++ {
		if s[j] == '\n' {
			c.rest = s[j+1:]
			c.done = len(c.rest) == 0
			return string(s[:j])
		}
	}

	if len(s) <= c.width || c.width < 1 {
		c.done = true
		c.rest = nil
		return string(s)
	}

	j := c.width
	for j > 0 && s[j] != ' ' {
		j--
	}
	if j == 0 {
		c.rest = s[c.width:]
		return string(s[:c.width])
	}
	c.rest = s[j+1:]
	return string(s[:j])
}

// WriteColumns prints texts side by side, each wrapped to its width, one
// line per format call until every column has run out. A column that
// finishes early contributes empty strings to the remaining lines. format
// must hold one string verb per column, for example " %-25.25s %-52.52s\n".
func WriteColumns(w io.Writer, format string, widths []int, texts ...string) error {
	if len(widths) != len(texts) {
		return fmt.Errorf("columns: %d widths for %d texts", len(widths), len(texts))
	}

	cols := make([]column, len(widths))
	for i := range cols {
		cols[i] = column{width: widths[i], rest: []rune(texts[i])}
	}

	segments := make([]interface{}, len(cols))
	for {
		pending := false
		for i := range cols {
			segments[i] = cols[i].cut()
			if !cols[i].done {
				pending = true
			}
		}
		if _, err := fmt.Fprintf(w, format, segments...); err != nil {
			return err
		}
		if !pending {
			return nil
		}
	}
}

// Wrap splits text into the segments a single column of the given width
// would print.
func Wrap(text string, width int) []string {
	c := column{width: width, rest: []rune(text)}
	var lines []string
	for !c.done {
		lines = append(lines, c.cut())
	}
	return lines
}
