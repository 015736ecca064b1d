package tidy

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/text/transform"
)

// nowrap stands in for spaces that must not become line breaks while a
// line is wrapped.
const nowrap = '\ue000'

var blockTags = map[string]bool{
	"html": true, "head": true, "body": true, "title": true, "meta": true,
	"link": true, "base": true, "style": true, "script": true, "noscript": true,
	"div": true, "p": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true, "dl": true,
	"dt": true, "dd": true, "table": true, "thead": true, "tbody": true,
	"tfoot": true, "tr": true, "td": true, "th": true, "caption": true,
	"colgroup": true, "col": true, "form": true, "fieldset": true,
	"legend": true, "pre": true, "blockquote": true, "address": true,
	"hr": true, "center": true, "section": true, "article": true, "nav": true,
	"aside": true, "header": true, "footer": true, "main": true,
	"figure": true, "figcaption": true, "option": true, "optgroup": true,
	"textarea": true, "menu": true, "details": true, "summary": true,
}

var rawTags = map[string]bool{
	"pre": true, "script": true, "style": true, "textarea": true, "xmp": true,
}

var optionalEnd = map[string]bool{
	"p": true, "li": true, "dt": true, "dd": true, "option": true,
	"tr": true, "td": true, "th": true,
}

var namedEntities = map[rune]string{
	0x00a0: "nbsp", 0x00a9: "copy", 0x00ae: "reg", 0x00b0: "deg",
	0x00df: "szlig", 0x00e0: "agrave", 0x00e4: "auml", 0x00e7: "ccedil",
	0x00e8: "egrave", 0x00e9: "eacute", 0x00f1: "ntilde", 0x00f6: "ouml",
	0x00fc: "uuml", 0x2013: "ndash", 0x2014: "mdash", 0x2018: "lsquo",
	0x2019: "rsquo", 0x201c: "ldquo", 0x201d: "rdquo", 0x20ac: "euro",
}

type printer struct {
	d      *Doc
	out    strings.Builder
	line   strings.Builder
	unit   string
	mode   uint
	wrap   int
	upper  bool
	xml    bool
	xhtml  bool
	omit   bool
	num    bool
	sorted bool
	raw    bool
	fits   func(rune) bool
}

func (d *Doc) newPrinter() *printer {
	p := &printer{
		d:      d,
		mode:   d.Int(IndentContent),
		wrap:   int(d.Int(WrapLen)),
		xml:    d.Bool(XMLTags),
		xhtml:  d.Bool(XHTMLOut) || d.Bool(XMLOut),
		num:    d.Bool(NumEntities),
		sorted: d.CurrentPick(SortAttributes) == "alpha",
	}
	p.upper = d.Bool(UpperCaseTags) && !p.xml
	p.omit = d.Bool(OmitOptionalTags) && !p.xml && !p.xhtml
	if d.Bool(HTMLOut) {
		p.xhtml = false
	}
	p.unit = strings.Repeat(" ", int(d.Int(IndentSpaces)))
	if d.Bool(IndentWithTabs) {
		p.unit = strings.Repeat("\t", int(d.Int(IndentSpaces)))
	}
	cs := d.outputCharset()
	p.raw = cs.enc == nil
	p.fits = cs.rangeCheck
	return p
}

// Render returns the pretty printed document in the output encoding.
func (d *Doc) Render() ([]byte, error) {
	if d.root == nil {
		return nil, newNotReadyError()
	}

	p := d.newPrinter()
	if body := d.bodyOnly(); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			p.node(c, 0)
		}
	} else {
		p.node(d.root, 0)
	}
	p.flush(0)

	text := p.out.String()
	switch d.Int(Newline) {
	case NewlineCRLF:
		text = strings.ReplaceAll(text, "\n", "\r\n")
	case NewlineCR:
		text = strings.ReplaceAll(text, "\n", "\r")
	}

	cs := d.outputCharset()
	if cs.enc == nil {
		return []byte(text), nil
	}
	out, _, err := transform.Bytes(cs.enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, newInvalidValueError(d.Option(OutCharEncoding).name, d.Value(OutCharEncoding), err)
	}
	return out, nil
}

// SaveFile writes the pretty printed document to path.
func (d *Doc) SaveFile(path string) (Status, error) {
	out, err := d.Render()
	if err != nil {
		return StatusFailed, err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		d.printf(locale.CannotSaveFile, path, err)
		return StatusFailed, newIOError(err, ErrMsgWriteFile, path)
	}
	log.Debugw("document saved", "path", path, "bytes", len(out))
	return d.status(), nil
}

// SaveWriter writes the pretty printed document to w, standard output for
// the command line.
func (d *Doc) SaveWriter(w io.Writer) (Status, error) {
	out, err := d.Render()
	if err != nil {
		return StatusFailed, err
	}
	if _, err := io.Copy(w, bytes.NewReader(out)); err != nil {
		return StatusFailed, newIOError(err, ErrMsgWriteFile, "stdout")
	}
	return d.status(), nil
}

func (d *Doc) bodyOnly() *html.Node {
	switch d.Int(ShowBodyOnly) {
	case YesState:
	case AutoState:
		if !d.bodyInferred {
			return nil
		}
	default:
		return nil
	}
	return findElement(d.root, "body")
}

func (p *printer) isBlock(n *html.Node) bool {
	if p.xml {
		return true
	}
	return blockTags[n.Data] || containsFold(p.d.values[BlockTags].tags, n.Data)
}

func (p *printer) isRaw(n *html.Node) bool {
	if p.xml {
		return false
	}
	return rawTags[n.Data] || containsFold(p.d.values[PreTags].tags, n.Data)
}

func (p *printer) isVoid(n *html.Node) bool {
	if p.xml {
		return n.FirstChild == nil
	}
	return p.d.isVoid(n.Data)
}

func (p *printer) hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && p.isBlock(c) {
			return true
		}
	}
	return false
}

func (p *printer) node(n *html.Node, depth int) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.node(c, depth)
		}
	case html.DoctypeNode:
		p.flush(depth)
		p.writeLine(depth, doctypeString(n))
	case html.CommentNode:
		p.inline("<!--" + n.Data + "-->")
	case html.TextNode:
		p.text(n.Data)
	case html.ElementNode:
		if p.isBlock(n) {
			p.block(n, depth)
		} else {
			p.inlineElement(n, depth)
		}
	}
}

func (p *printer) block(n *html.Node, depth int) {
	p.flush(depth)

	if p.isRaw(n) {
		var b strings.Builder
		b.WriteString(p.startTag(n))
		p.rawContent(&b, n)
		b.WriteString(p.endTag(n))
		p.writeLine(depth, b.String())
		return
	}

	omitTags := p.omit && len(n.Attr) == 0 && (n.Data == "html" || n.Data == "head" || n.Data == "body")
	if p.isVoid(n) {
		p.writeLine(depth, p.startTag(n))
		return
	}

	hasBlock := p.hasBlockChild(n)
	if !hasBlock && p.mode != YesState && !omitTags {
		p.inline(p.startTag(n))
		p.children(n, depth)
		if !p.omitEnd(n) {
			p.inline(p.endTag(n))
		}
		p.flush(depth)
		return
	}

	inner := depth
	if (p.mode == YesState || (p.mode == AutoState && hasBlock)) && n.Data != "html" && !omitTags {
		inner = depth + 1
	}
	if !omitTags {
		p.writeLine(depth, p.startTag(n))
	}
	p.children(n, inner)
	p.flush(inner)
	if !omitTags && !p.omitEnd(n) {
		p.writeLine(depth, p.endTag(n))
	}
}

func (p *printer) inlineElement(n *html.Node, depth int) {
	p.inline(p.startTag(n))
	if p.isVoid(n) {
		if n.Data == "br" {
			p.flush(depth)
		}
		return
	}
	if p.isRaw(n) {
		var b strings.Builder
		p.rawContent(&b, n)
		p.inline(strings.ReplaceAll(b.String(), " ", string(nowrap)))
	} else {
		p.children(n, depth)
	}
	p.inline(p.endTag(n))
}

func (p *printer) children(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.node(c, depth)
	}
}

func (p *printer) omitEnd(n *html.Node) bool {
	return p.omit && optionalEnd[n.Data]
}

// rawContent writes the children of n with their whitespace intact.
func (p *printer) rawContent(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if n.Data == "script" || n.Data == "style" {
				b.WriteString(c.Data)
			} else {
				b.WriteString(p.escape(c.Data, false))
			}
		case html.CommentNode:
			b.WriteString("<!--" + c.Data + "-->")
		case html.ElementNode:
			b.WriteString(p.startTag(c))
			if !p.isVoid(c) {
				p.rawContent(b, c)
				b.WriteString(p.endTag(c))
			}
		}
	}
}

func (p *printer) text(s string) {
	collapsed := collapseSpace(s)
	if p.line.Len() == 0 {
		collapsed = strings.TrimLeft(collapsed, " ")
	}
	p.line.WriteString(p.escape(collapsed, false))
}

func (p *printer) inline(s string) {
	p.line.WriteString(s)
}

// flush writes the pending inline content at depth, wrapped to the
// configured margin.
func (p *printer) flush(depth int) {
	text := strings.TrimSpace(p.line.String())
	p.line.Reset()
	if text == "" {
		return
	}
	indent := strings.Repeat(p.unit, depth)
	if p.wrap > 0 {
		limit := p.wrap - len(indent)
		if limit < 1 {
			limit = 1
		}
		text = wordwrap.WrapString(text, uint(limit))
	}
	for _, l := range strings.Split(text, "\n") {
		p.writeLine(depth, strings.TrimRight(l, " "))
	}
}

func (p *printer) writeLine(depth int, s string) {
	p.out.WriteString(strings.Repeat(p.unit, depth))
	p.out.WriteString(strings.ReplaceAll(s, string(nowrap), " "))
	p.out.WriteByte('\n')
}

func (p *printer) tagName(name string) string {
	if p.upper {
		return strings.ToUpper(name)
	}
	return name
}

func (p *printer) startTag(n *html.Node) string {
	attrs := append([]html.Attribute(nil), n.Attr...)
	if p.sorted {
		sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	}
	if p.xhtml && n.Data == "html" {
		if _, ok := attr(n, "xmlns"); !ok {
			attrs = append([]html.Attribute{{Key: "xmlns", Val: "http://www.w3.org/1999/xhtml"}}, attrs...)
		}
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(p.tagName(n.Data))
	for _, a := range attrs {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace + ":")
		}
		b.WriteString(a.Key)
		if a.Val == "" && !p.xhtml && !p.xml {
			continue
		}
		val := a.Val
		if val == "" {
			val = a.Key
		}
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(p.escape(val, true), " ", string(nowrap)))
		b.WriteByte('"')
	}
	if p.isVoid(n) && (p.xhtml || p.xml) {
		b.WriteString(" />")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

func (p *printer) endTag(n *html.Node) string {
	return "</" + p.tagName(n.Data) + ">"
}

func (p *printer) escape(s string, inAttr bool) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '"' && inAttr:
			b.WriteString("&quot;")
		case p.raw:
			b.WriteRune(r)
		case r == 0x00a0 || (p.fits != nil && !p.fits(r)):
			b.WriteString(p.entity(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p *printer) entity(r rune) string {
	if name, ok := namedEntities[r]; ok && !p.num {
		return "&" + name + ";"
	}
	return fmt.Sprintf("&#%d;", r)
}

func doctypeString(n *html.Node) string {
	var public, system string
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}
	s := "<!DOCTYPE " + n.Data
	switch {
	case public != "":
		s += ` PUBLIC "` + public + `"`
		if system != "" {
			s += ` "` + system + `"`
		}
	case system != "":
		s += ` SYSTEM "` + system + `"`
	}
	return s + ">"
}

func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
