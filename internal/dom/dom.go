// Package dom is the server-side display surface: an HTML document whose
// elements are addressed by id and mutated by render instructions.
package dom

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/distant-reading/internal/render"
)

// ErrElementNotFound is returned when an instruction targets an id that is
// not present in the document.
var ErrElementNotFound = errors.New("element not found")

// Document is a parsed HTML page indexed by element id.
type Document struct {
	root *html.Node
	byID map[string]*html.Node
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	d := &Document{root: root, byID: make(map[string]*html.Node)}
	d.index(root)
	return d, nil
}

func (d *Document) index(n *html.Node) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" {
			d.byID[id] = n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

// ByID returns the element with the given id.
func (d *Document) ByID(id string) (*html.Node, error) {
	n, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}
	return n, nil
}

// Apply runs the instructions in order. Every target is resolved before
// anything is mutated, so a missing element leaves the document untouched.
func (d *Document) Apply(ins ...render.Instruction) error {
	known := make(map[string]bool)
	for _, in := range ins {
		if _, ok := d.byID[in.Target]; !ok && !known[in.Target] {
			return fmt.Errorf("%w: #%s (%s)", ErrElementNotFound, in.Target, in.Op)
		}
		if in.Op == render.OpAppend && in.Node != nil {
			collectIDs(in.Node, known)
		}
	}

	for _, in := range ins {
		n, err := d.ByID(in.Target)
		if err != nil {
			return err
		}
		switch in.Op {
		case render.OpClear:
			d.clear(n)
		case render.OpSetText:
			d.clear(n)
			n.AppendChild(&html.Node{Type: html.TextNode, Data: in.Text})
		case render.OpSetStyle:
			setStyle(n, in.Property, in.Value)
		case render.OpAddClass:
			classes := strings.Fields(attr(n, "class"))
			if !slices.Contains(classes, in.Class) {
				setAttr(n, "class", strings.Join(append(classes, in.Class), " "))
			}
		case render.OpRemoveClass:
			classes := slices.DeleteFunc(strings.Fields(attr(n, "class")), func(c string) bool { return c == in.Class })
			setAttr(n, "class", strings.Join(classes, " "))
		case render.OpAppend:
			if in.Node == nil {
				return fmt.Errorf("append to #%s: no node", in.Target)
			}
			child := build(in.Node)
			n.AppendChild(child)
			d.index(child)
		default:
			return fmt.Errorf("unknown op %q", in.Op)
		}
	}
	return nil
}

// Render writes the document as HTML. Text is escaped.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Text returns the concatenated text content of an element.
func (d *Document) Text(id string) (string, error) {
	n, err := d.ByID(id)
	if err != nil {
		return "", err
	}
	return TextContent(n), nil
}

// HasClass reports whether an element carries a class.
func (d *Document) HasClass(id, class string) (bool, error) {
	n, err := d.ByID(id)
	if err != nil {
		return false, err
	}
	return slices.Contains(strings.Fields(attr(n, "class")), class), nil
}

// Style returns an inline style property of an element.
func (d *Document) Style(id, property string) (string, error) {
	n, err := d.ByID(id)
	if err != nil {
		return "", err
	}
	return StyleOf(n, property), nil
}

// Elements returns the element children of an element.
func (d *Document) Elements(id string) ([]*html.Node, error) {
	n, err := d.ByID(id)
	if err != nil {
		return nil, err
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out, nil
}

// TextContent returns the text of n and its descendants.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(TextContent(c))
	}
	return b.String()
}

// Attr returns an attribute value of n, or "".
func Attr(n *html.Node, key string) string { return attr(n, key) }

// StyleOf returns an inline style property of n.
func StyleOf(n *html.Node, property string) string {
	for _, d := range parseStyle(attr(n, "style")) {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

func (d *Document) clear(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		d.unindex(c)
		n.RemoveChild(c)
		c = next
	}
}

func (d *Document) unindex(n *html.Node) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" && d.byID[id] == n {
			delete(d.byID, id)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.unindex(c)
	}
}

func build(src *render.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: src.Tag, DataAtom: atom.Lookup([]byte(src.Tag))}
	if src.ID != "" {
		setAttr(n, "id", src.ID)
	}
	if src.Class != "" {
		setAttr(n, "class", src.Class)
	}
	if src.Title != "" {
		setAttr(n, "title", src.Title)
	}
	if len(src.Style) > 0 {
		setAttr(n, "style", src.StyleAttr())
	}
	if src.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: src.Text})
	}
	for _, c := range src.Children {
		n.AppendChild(build(c))
	}
	return n
}

func collectIDs(n *render.Node, into map[string]bool) {
	if n.ID != "" {
		into[n.ID] = true
	}
	for _, c := range n.Children {
		collectIDs(c, into)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func setStyle(n *html.Node, property, value string) {
	decls := parseStyle(attr(n, "style"))
	found := false
	for i := range decls {
		if decls[i].Property == property {
			decls[i].Value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, render.Decl{Property: property, Value: value})
	}
	setAttr(n, "style", (&render.Node{Style: decls}).StyleAttr())
}

func parseStyle(s string) []render.Decl {
	var decls []render.Decl
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, render.Decl{Property: strings.TrimSpace(prop), Value: strings.TrimSpace(val)})
	}
	return decls
}
