package tidy

import (
	"fmt"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"golang.org/x/net/html"
)

type level int

const (
	levelInfo level = iota
	levelWarning
	levelError
	levelAccess
)

func (l level) prefix() locale.MessageID {
	switch l {
	case levelWarning:
		return locale.DiagWarning
	case levelError:
		return locale.DiagError
	case levelAccess:
		return locale.DiagAccess
	}
	return locale.DiagInfo
}

// report counts a diagnostic and writes it to the error stream unless the
// diagnostic options mute it. A zero line means the message has no
// source position.
func (d *Doc) report(lvl level, line, col int, id locale.MessageID, args ...interface{}) {
	if !d.count(lvl) {
		return
	}

	var b strings.Builder
	switch {
	case d.Bool(Emacs):
		fmt.Fprintf(&b, "%s:%d:%d: ", d.Value(EmacsFile), line, col)
	case line > 0:
		b.WriteString(d.loc.Sprintf(locale.DiagLocation, line, col))
	}
	b.WriteString(d.loc.String(lvl.prefix()))
	b.WriteString(d.loc.Sprintf(id, args...))
	b.WriteByte('\n')
	fmt.Fprint(d.errout, b.String())
}

// count records one diagnostic and reports whether it should be shown.
func (d *Doc) count(lvl level) bool {
	switch lvl {
	case levelError:
		d.errors++
		if d.shownErrors >= d.Int(ShowErrors) {
			return false
		}
		d.shownErrors++
		return true
	case levelWarning:
		d.warnings++
		return d.Bool(ShowWarnings)
	case levelAccess:
		d.accessWarns++
		d.warnings++
		return d.Bool(ShowWarnings)
	}
	d.infos++
	return d.Bool(ShowInfo) && !d.Bool(Quiet)
}

func (d *Doc) printf(id locale.MessageID, args ...interface{}) {
	fmt.Fprint(d.errout, d.loc.Sprintf(id, args...))
}

// RunDiagnostics checks the repaired tree, reports what it finds and the
// message totals, and returns the status of the whole document.
func (d *Doc) RunDiagnostics() (Status, error) {
	if d.root == nil {
		return StatusFailed, newNotReadyError()
	}

	accessLevel := d.Int(AccessibilityCheckLevel)
	var sawTitle bool
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "img":
			if _, ok := attr(n, "alt"); !ok {
				if accessLevel >= 1 {
					d.report(levelAccess, 0, 0, locale.AccessMissingAlt)
				} else {
					d.report(levelWarning, 0, 0, locale.MissingAlt)
				}
			}
		case "title":
			sawTitle = true
		case "html":
			if _, ok := attr(n, "lang"); !ok && accessLevel >= 3 && !d.Bool(XMLTags) {
				d.report(levelAccess, 0, 0, locale.AccessMissingLang)
			}
		case "blink", "marquee", "nobr":
			d.report(levelWarning, 0, 0, locale.ProprietaryElement, n.Data)
		case "b", "i", "em", "strong":
			if hasAncestor(n, n.Data) {
				d.report(levelWarning, 0, 0, locale.NestedEmphasis, n.Data)
			}
		}
	})
	if !sawTitle && accessLevel >= 2 && !d.Bool(XMLTags) {
		d.report(levelAccess, 0, 0, locale.AccessMissingTitle)
	}

	if d.Bool(ShowInfo) && !d.Bool(Quiet) {
		d.ReportDoctype()
	}
	if !d.Bool(Quiet) {
		if d.errors+d.warnings > 0 {
			d.printf(locale.SummaryCounts, d.warnings, d.errors)
		} else {
			d.printf(locale.SummaryClean)
		}
	}
	return d.status(), nil
}

// ReportDoctype writes the declared doctype and what the content looks
// like as information messages, once per parsed document.
func (d *Doc) ReportDoctype() {
	if d.reported || d.root == nil {
		return
	}
	d.reported = true
	if d.doctype != "" {
		d.report(levelInfo, 0, 0, locale.DoctypeGiven, d.doctype)
	}
	d.report(levelInfo, 0, 0, locale.DoctypeDetected, d.detectedVersion())
}

func (d *Doc) detectedVersion() string {
	switch {
	case d.Bool(XMLTags):
		return "XML"
	case strings.Contains(strings.ToLower(d.doctype), "xhtml"):
		return "XHTML 1.0"
	case strings.Contains(strings.ToLower(d.doctype), "html 4"):
		return "HTML 4.01"
	}
	return "HTML5"
}

// ErrorSummary explains the totals of the last document.
func (d *Doc) ErrorSummary() {
	if d.accessWarns > 0 {
		d.printf(locale.SummaryAccess, d.accessWarns, d.Int(AccessibilityCheckLevel))
	}
	if d.errors > 0 && !d.Bool(ForceOutput) {
		d.printf(locale.SummaryNoOutput)
	}
}

// GeneralInfo writes where to find documentation and report bugs.
func (d *Doc) GeneralInfo() {
	d.printf(locale.GeneralInfo)
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAncestor(n *html.Node, name string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == name {
			return true
		}
	}
	return false
}
