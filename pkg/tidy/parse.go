package tidy

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/transform"
)

// ParseFile reads and parses the document at path.
func (d *Doc) ParseFile(path string) (Status, error) {
	f, err := os.Open(path)
	if err != nil {
		d.resetCounts()
		d.errors++
		d.printf(locale.CannotOpenFile, path)
		return StatusFailed, newIOError(err, ErrMsgOpenFile, path)
	}
	defer f.Close()

	return d.parse(path, f)
}

// ParseReader parses the document read from r, standard input for the
// command line.
func (d *Doc) ParseReader(r io.Reader) (Status, error) {
	return d.parse("stdin", r)
}

func (d *Doc) parse(name string, r io.Reader) (Status, error) {
	d.resetCounts()
	d.srcPath = name
	d.reported = false

	if cs := d.inputCharset(); cs.enc != nil {
		r = transform.NewReader(r, cs.enc.NewDecoder())
	}
	src, err := io.ReadAll(r)
	if err != nil {
		d.printf(locale.CannotOpenFile, name)
		return StatusFailed, newIOError(err, ErrMsgOpenFile, name)
	}
	d.source = src

	cleaned := d.scan(src)

	if d.Bool(XMLTags) {
		d.root = buildXMLTree(cleaned)
	} else {
		root, err := html.Parse(bytes.NewReader(cleaned))
		if err != nil {
			return StatusFailed, newIOError(err, ErrMsgOpenFile, name)
		}
		d.root = root
	}
	d.doctype = findDoctype(d.root)

	log.Debugw("document parsed", "source", name, "bytes", len(src),
		"errors", d.errors, "warnings", d.warnings)

	d.parseStatus = d.status()
	return d.parseStatus, nil
}

func (d *Doc) resetCounts() {
	d.errors, d.warnings, d.accessWarns, d.infos, d.shownErrors = 0, 0, 0, 0, 0
	d.root = nil
	d.doctype = ""
	d.bodyInferred = false
}

func (d *Doc) status() Status {
	switch {
	case d.errors > 0:
		return StatusErrors
	case d.warnings > 0:
		return StatusWarnings
	}
	return StatusOK
}

// scan tokenizes src once, reporting markup problems with their position,
// and returns the source with repeated attributes resolved according to
// repeated-attributes.
func (d *Doc) scan(src []byte) []byte {
	var (
		out     bytes.Buffer
		line    = 1
		col     = 1
		open    []string
		sawDoc  bool
		sawBody bool
		xml     = d.Bool(XMLTags)
	)

	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := append([]byte(nil), z.Raw()...)
		tokLine, tokCol := line, col
		line, col = advance(raw, line, col)

		tok := z.Token()
		switch tt {
		case html.DoctypeToken:
			sawDoc = true
		case html.StartTagToken, html.SelfClosingTagToken:
			name := tok.Data
			if name == "body" {
				sawBody = true
			}
			if !xml && !d.knownTag(name) {
				d.report(levelError, tokLine, tokCol, locale.UnknownElement, name)
			}
			if attrs, dup := d.resolveAttrs(tok.Attr); dup != "" {
				d.report(levelWarning, tokLine, tokCol, locale.RepeatedAttribute, name, dup)
				tok.Attr = attrs
				raw = []byte(tok.String())
			}
			if tt == html.StartTagToken && !d.isVoid(name) {
				open = append(open, name)
			}
		case html.EndTagToken:
			name := tok.Data
			i := lastIndex(open, name)
			if i < 0 {
				d.report(levelWarning, tokLine, tokCol, locale.UnexpectedEndTag, name)
				break
			}
			for _, unclosed := range open[i+1:] {
				if xml || !impliedEnd(unclosed) {
					d.report(levelWarning, tokLine, tokCol, locale.MissingEndTag, unclosed)
				}
			}
			open = open[:i]
		}
		out.Write(raw)
	}

	for i := len(open) - 1; i >= 0; i-- {
		if xml || !impliedEnd(open[i]) {
			d.report(levelWarning, line, col, locale.MissingEndTag, open[i])
		}
	}
	if !sawDoc && !xml {
		d.report(levelWarning, 1, 1, locale.MissingDoctype)
	}
	d.bodyInferred = !sawBody

	return out.Bytes()
}

// resolveAttrs drops repeated attributes, keeping the first or last one.
// It returns the name of the first repeated attribute, or "".
func (d *Doc) resolveAttrs(attrs []html.Attribute) ([]html.Attribute, string) {
	seen := make(map[string]int, len(attrs))
	var dup string
	out := make([]html.Attribute, 0, len(attrs))
	keepLast := d.CurrentPick(DuplicateAttrs) == "keep-last"
	for _, a := range attrs {
		if i, ok := seen[a.Key]; ok {
			if dup == "" {
				dup = a.Key
			}
			if keepLast {
				out[i] = a
			}
			continue
		}
		seen[a.Key] = len(out)
		out = append(out, a)
	}
	return out, dup
}

func advance(raw []byte, line, col int) (int, int) {
	for _, b := range raw {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func lastIndex(list []string, s string) int {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == s {
			return i
		}
	}
	return -1
}

// impliedEnd reports elements whose end tag HTML lets an author omit.
func impliedEnd(name string) bool {
	switch name {
	case "p", "li", "dt", "dd", "option", "optgroup", "tr", "td", "th",
		"thead", "tbody", "tfoot", "colgroup", "html", "head", "body", "rb", "rt", "rp":
		return true
	}
	return false
}

func (d *Doc) knownTag(name string) bool {
	if atom.Lookup([]byte(name)) != 0 {
		return true
	}
	for _, id := range []OptionID{InlineTags, BlockTags, EmptyTags, PreTags} {
		if containsFold(d.values[id].tags, name) {
			return true
		}
	}
	return strings.Contains(name, "-")
}

func (d *Doc) isVoid(name string) bool {
	switch name {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return containsFold(d.values[EmptyTags].tags, name)
}

func findDoctype(root *html.Node) string {
	if root == nil {
		return ""
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			for _, a := range c.Attr {
				if a.Key == "public" && a.Val != "" {
					return a.Val
				}
			}
			return c.Data
		}
	}
	return ""
}

// buildXMLTree builds a node tree from well-formed markup without HTML's
// implied elements.
func buildXMLTree(src []byte) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	cur := root
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return root
		}
		// Token lowercases tag names inside the tokenizer's buffer.
		raw := append([]byte(nil), z.Raw()...)
		tok := z.Token()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			tok.Data = xmlName(raw, tok.Data)
		}
		switch tt {
		case html.StartTagToken:
			n := &html.Node{Type: html.ElementNode, Data: tok.Data, Attr: tok.Attr}
			cur.AppendChild(n)
			cur = n
		case html.SelfClosingTagToken:
			cur.AppendChild(&html.Node{Type: html.ElementNode, Data: tok.Data, Attr: tok.Attr})
		case html.EndTagToken:
			for n := cur; n != nil && n != root; n = n.Parent {
				if n.Data == tok.Data {
					cur = n.Parent
					break
				}
			}
		case html.TextToken:
			cur.AppendChild(&html.Node{Type: html.TextNode, Data: tok.Data})
		case html.CommentToken:
			cur.AppendChild(&html.Node{Type: html.CommentNode, Data: tok.Data})
		case html.DoctypeToken:
			cur.AppendChild(&html.Node{Type: html.DoctypeNode, Data: tok.Data})
		}
	}
}

// xmlName recovers the case of a tag name the tokenizer folded.
func xmlName(raw []byte, folded string) string {
	s := strings.TrimLeft(string(raw), "</")
	if len(s) >= len(folded) && strings.EqualFold(s[:len(folded)], folded) {
		return s[:len(folded)]
	}
	return folded
}
