package tidy

import (
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	strictPublicID = "-//W3C//DTD HTML 4.01//EN"
	strictSystemID = "http://www.w3.org/TR/html4/strict.dtd"
	loosePublicID  = "-//W3C//DTD HTML 4.01 Transitional//EN"
	looseSystemID  = "http://www.w3.org/TR/html4/loose.dtd"
)

// CleanAndRepair applies the markup options to the parsed tree.
func (d *Doc) CleanAndRepair() (Status, error) {
	if d.root == nil {
		return StatusFailed, newNotReadyError()
	}

	if d.Bool(HideComments) {
		removeAll(d.root, func(n *html.Node) bool { return n.Type == html.CommentNode })
	}
	if d.Bool(MakeClean) {
		d.cleanPresentational(d.root)
	}
	if d.Bool(MakeBare) {
		walk(d.root, func(n *html.Node) {
			if n.Type == html.TextNode {
				n.Data = bareText.Replace(n.Data)
			}
		})
	}
	if d.Bool(GDocClean) {
		d.cleanGoogleDocs()
	}
	if d.Bool(DropEmptyElems) {
		d.dropEmpty(d.root)
	}
	if !d.Bool(XMLTags) {
		d.fixDoctype()
		if d.Bool(TidyMark) {
			d.addGenerator()
		}
	}

	return d.status(), nil
}

var bareText = strings.NewReplacer(
	"\u2018", "'", "\u2019", "'",
	"\u201c", `"`, "\u201d", `"`,
	"\u2013", "-", "\u2014", "-",
	"\u00a0", " ",
)

// cleanPresentational replaces center, font and nobr with CSS styled
// div and span elements.
func (d *Doc) cleanPresentational(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.cleanPresentational(c)
	}
	if n.Type != html.ElementNode {
		return
	}

	var style []string
	var replacement string
	switch n.Data {
	case "center":
		replacement = "div"
		style = append(style, "text-align: center")
	case "nobr":
		replacement = "span"
		style = append(style, "white-space: nowrap")
	case "font":
		replacement = "span"
		for _, a := range n.Attr {
			switch a.Key {
			case "color":
				style = append(style, "color: "+a.Val)
			case "face":
				style = append(style, "font-family: "+a.Val)
			case "size":
				style = append(style, "font-size: "+fontSize(a.Val))
			}
		}
	default:
		return
	}

	d.report(levelInfo, 0, 0, locale.ObsoleteElement, n.Data, replacement)
	n.Data = replacement
	n.DataAtom = atom.Lookup([]byte(replacement))
	var kept []html.Attribute
	for _, a := range n.Attr {
		switch a.Key {
		case "color", "face", "size":
		default:
			kept = append(kept, a)
		}
	}
	if len(style) > 0 {
		kept = append(kept, html.Attribute{Key: "style", Val: strings.Join(style, "; ")})
	}
	n.Attr = kept
}

func fontSize(v string) string {
	switch strings.TrimSpace(v) {
	case "1", "-2":
		return "60%"
	case "2", "-1":
		return "80%"
	case "4", "+1":
		return "120%"
	case "5", "+2":
		return "150%"
	case "6", "+3":
		return "200%"
	case "7", "+4":
		return "300%"
	}
	return "100%"
}

// cleanGoogleDocs unwraps the guid wrapper Google Docs exports and drops
// its generated class names.
func (d *Doc) cleanGoogleDocs() {
	var wrappers []*html.Node
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if id, ok := attr(n, "id"); ok && strings.HasPrefix(id, "docs-internal-guid") {
			wrappers = append(wrappers, n)
		}
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if a.Key == "class" && isGeneratedClass(a.Val) {
				continue
			}
			if a.Key == "dir" && a.Val == "ltr" {
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	})
	for _, w := range wrappers {
		unwrap(w)
	}
	var spans []*html.Node
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" && len(n.Attr) == 0 {
			spans = append(spans, n)
		}
	})
	for _, s := range spans {
		unwrap(s)
	}
}

func isGeneratedClass(v string) bool {
	for _, class := range strings.Fields(v) {
		if len(class) < 2 || class[0] != 'c' || strings.Trim(class[1:], "0123456789") != "" {
			return false
		}
	}
	return true
}

var droppable = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdo": true, "big": true, "cite": true,
	"code": true, "dfn": true, "em": true, "font": true, "i": true, "kbd": true,
	"p": true, "q": true, "s": true, "samp": true, "small": true, "span": true,
	"strike": true, "strong": true, "sub": true, "sup": true, "tt": true,
	"u": true, "var": true,
}

// dropEmpty removes inline elements and paragraphs with no content and no
// attributes.
func (d *Doc) dropEmpty(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		d.dropEmpty(c)
		if c.Type == html.ElementNode && droppable[c.Data] && c.FirstChild == nil && len(c.Attr) == 0 {
			d.report(levelWarning, 0, 0, locale.TrimEmptyElement, c.Data)
			n.RemoveChild(c)
		}
		c = next
	}
}

func (d *Doc) fixDoctype() {
	var existing *html.Node
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			existing = c
			break
		}
	}

	var want *html.Node
	switch d.Int(DoctypeMode) {
	case DoctypeOmit:
		if existing != nil {
			d.root.RemoveChild(existing)
		}
		return
	case DoctypeAuto:
		if existing != nil {
			return
		}
		want = &html.Node{Type: html.DoctypeNode, Data: "html"}
	case DoctypeHTML5:
		want = &html.Node{Type: html.DoctypeNode, Data: "html"}
	case DoctypeStrict:
		want = legacyDoctype(strictPublicID, strictSystemID)
	case DoctypeLoose:
		want = legacyDoctype(loosePublicID, looseSystemID)
	case DoctypeUser:
		want = legacyDoctype(strings.Trim(d.Value(Doctype), `"`), "")
	}

	if existing != nil {
		d.root.RemoveChild(existing)
	}
	d.root.InsertBefore(want, d.root.FirstChild)
	d.doctype = findDoctype(d.root)
}

func legacyDoctype(public, system string) *html.Node {
	n := &html.Node{Type: html.DoctypeNode, Data: "html"}
	n.Attr = append(n.Attr, html.Attribute{Key: "public", Val: public})
	if system != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "system", Val: system})
	}
	return n
}

// addGenerator adds the generator meta element to the head unless one is
// present.
func (d *Doc) addGenerator() {
	head := findElement(d.root, "head")
	if head == nil {
		return
	}
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "meta" {
			if name, _ := attr(c, "name"); strings.EqualFold(name, "generator") {
				return
			}
		}
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "meta",
		DataAtom: atom.Meta,
		Attr: []html.Attribute{
			{Key: "name", Val: "generator"},
			{Key: "content", Val: generator()},
		},
	})
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func removeAll(n *html.Node, match func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if match(c) {
			n.RemoveChild(c)
		} else {
			removeAll(c, match)
		}
		c = next
	}
}

// unwrap replaces n by its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}
