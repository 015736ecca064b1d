package driver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

// next applies switches and options until it reaches a source path. ok
// is false when the vector ran out first; exit is set when an
// informational command answered and the run is over.
func (d *Driver) next(c *Cursor) (source string, ok, exit bool) {
	for !c.Done() {
		tok, _ := c.Peek(0)
		if !strings.HasPrefix(tok, "-") {
			c.Advance(1)
			return tok, true, false
		}
		if d.option(c) {
			return "", false, true
		}
	}
	return "", false, false
}

// option handles the dash token at the cursor, with its value if it
// takes one, and reports whether it was an informational command.
func (d *Driver) option(c *Cursor) bool {
	tok, _ := c.Peek(0)
	arg := tok[1:]
	defer c.Advance(1)

	if s, ok := d.switches.Lookup(arg); ok {
		log.Debugw("switch", "token", tok)
		if s.act.informational() {
			d.inform(s, c)
			return true
		}
		d.apply(s, c)
		return false
	}

	if strings.HasPrefix(tok, "--") {
		d.passthrough(c, tok[2:])
		return false
	}

	for _, ch := range arg {
		s, ok := d.switches.Short(ch)
		if !ok {
			d.errs.Printf(locale.UnknownOption, ch)
			continue
		}
		d.apply(s, c)
	}
	return false
}

// apply performs a non-informational switch. Switches taking a value
// consume it from the token after the cursor.
func (d *Driver) apply(s *Switch, c *Cursor) {
	p := d.proc

	switch s.act {
	case actSetBool:
		p.SetBool(s.option, s.on)
	case actIndent:
		p.SetInt(tidy.IndentContent, tidy.AutoState)
		if p.Int(tidy.IndentSpaces) == 0 {
			p.ResetToDefault(tidy.IndentSpaces)
		}
	case actEncoding:
		if err := p.SetCharEncoding(s.encoding); err != nil {
			log.Warnw("cannot set encoding", "encoding", s.encoding, "error", err)
			d.errs.Printf(locale.CannotSetEncoding, s.encoding)
		}
	case actOutputFile, actLanguage:
		if v, ok := d.value(c, s); ok {
			name := p.Option(s.option).Name()
			if err := p.ParseValue(name, v); err != nil {
				d.errs.Printf(locale.BadOptionValue, name, v, err)
			}
		}
	case actConfigFile:
		if path, ok := d.value(c, s); ok {
			d.loadConfig(path)
			d.errs.Follow()
		}
	case actErrorFile:
		if path, ok := d.value(c, s); ok {
			d.errs.Redirect(path)
		}
	case actNumber:
		d.number(s, c)
	}
}

// value consumes the token after the cursor.
func (d *Driver) value(c *Cursor, s *Switch) (string, bool) {
	v, ok := c.Peek(1)
	if !ok {
		log.Debugw("switch ignored", "error", newMissingValueError(s.names[0]))
		return "", false
	}
	c.Advance(1)
	return v, true
}

// number handles the switches taking an optional unsigned number. A
// missing value means 0; a token that is not a number is left for the
// next round and the option keeps its value.
func (d *Driver) number(s *Switch, c *Cursor) {
	v, ok := c.Peek(1)
	if !ok {
		d.proc.SetInt(s.option, 0)
		return
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Debugw("value left unconsumed", "error", newBadNumberError(s.names[0], v, err))
		return
	}
	d.proc.SetInt(s.option, uint(n))
	c.Advance(1)
}

// passthrough sets the configuration option called name from the next
// token. The token is consumed only when the option accepts it.
func (d *Driver) passthrough(c *Cursor, name string) {
	v, ok := c.Peek(1)
	if !ok {
		d.errs.Printf(locale.BadOptionValue, name, "", newMissingValueError("--"+name))
		return
	}
	if err := d.proc.ParseValue(name, v); err != nil {
		log.Debugw("option rejected", "option", name, "value", v, "error", err)
		d.errs.Printf(locale.BadOptionValue, name, v, err)
		return
	}
	c.Advance(1)
	d.errs.Follow()
}

// inform runs an informational command.
func (d *Driver) inform(s *Switch, c *Cursor) {
	p := d.proc
	loc := p.Localizer()

	var err error
	switch s.act {
	case actHelp:
		err = report.Help(d.stdout, loc, d.prog, d.switches.Docs(loc))
	case actXMLHelp:
		err = report.XMLHelp(d.stdout, d.switches.Docs(loc))
	case actVersion:
		err = report.Version(d.stdout, loc)
	case actHelpConfig:
		err = report.HelpConfig(d.stdout, p)
	case actXMLConfig:
		err = report.XMLConfig(d.stdout, d.errs.Writer(), p)
	case actShowConfig:
		err = report.ShowConfig(d.stdout, p)
	case actHelpOption:
		if name, ok := c.Peek(1); ok {
			err = report.DescribeOption(d.stdout, p, name)
		} else {
			_, err = fmt.Fprintf(d.stdout, "%s\n", loc.String(locale.MustSpecifyOption))
		}
	}
	if err != nil {
		log.Errorw("cannot write report", "error", err)
	}
}
