package markup

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/leapstack-labs/leapweb/pkg/token"
	"golang.org/x/net/html"
)

// ParseError is returned when the underlying reader fails mid-parse.
type ParseError struct {
	Pos token.Position
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %v", e.Pos.Line, e.Pos.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// voidElements never have content and are never pushed as open elements.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

type jspMarker struct {
	open  string
	close string
	kind  Kind
}

// Longest opener first.
var jspMarkers = []jspMarker{
	{"<%--", "--%>", KindComment},
	{"<%@", "%>", KindDirective},
	{"<%=", "%>", KindExpression},
	{"<%!", "%>", KindScriptlet},
	{"<%", "%>", KindScriptlet},
}

var directiveAttr = regexp.MustCompile(`([\w:.-]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

func markerFor(s string) jspMarker {
	for _, m := range jspMarkers {
		if strings.HasPrefix(s, m.open) {
			return m
		}
	}
	return jspMarkers[len(jspMarkers)-1]
}

// ParseString parses markup held in memory.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads markup from r and returns its document node.
// Malformed markup never fails the parse; only read errors do.
func Parse(r io.Reader) (*Node, error) {
	b := newBuilder()
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, &ParseError{Pos: b.pos, Err: err}
			}
			break
		}

		// Raw is invalidated by the accessors below.
		raw := string(z.Raw())
		start := b.pos
		end := start.Advance(raw)
		b.pos = end

		if b.pending != nil {
			b.continueJSP(raw)
			continue
		}

		switch tt {
		case html.TextToken:
			b.text(raw, start)
		case html.StartTagToken, html.SelfClosingTagToken:
			b.startTag(z, tt == html.SelfClosingTagToken, token.Span{Start: start, End: end})
		case html.EndTagToken:
			name, _ := z.TagName()
			b.endTag(string(name), end)
		case html.CommentToken:
			b.add(&Node{Kind: KindComment, Text: string(z.Text()), Span: token.Span{Start: start, End: end}})
		case html.DoctypeToken:
			b.add(&Node{Kind: KindDoctype, Text: string(z.Text()), Span: token.Span{Start: start, End: end}})
		}
	}
	b.finish()
	return b.root, nil
}

// pendingJSP is a JSP segment whose closing marker has not been seen yet.
type pendingJSP struct {
	marker jspMarker
	start  token.Position
	buf    strings.Builder
}

type builder struct {
	root    *Node
	stack   []*Node
	pos     token.Position
	pending *pendingJSP
}

func newBuilder() *builder {
	root := &Node{Kind: KindDocument, Span: token.Span{Start: token.StartOfFile}}
	return &builder{
		root:  root,
		stack: []*Node{root},
		pos:   token.StartOfFile,
	}
}

func (b *builder) current() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *builder) add(n *Node) {
	b.current().AppendChild(n)
}

// text splits a text chunk into plain text and JSP segments.
func (b *builder) text(raw string, start token.Position) {
	for raw != "" {
		i := strings.Index(raw, "<%")
		if i < 0 {
			b.addText(raw, start)
			return
		}
		if i > 0 {
			b.addText(raw[:i], start)
			start = start.Advance(raw[:i])
			raw = raw[i:]
		}

		m := markerFor(raw)
		j := strings.Index(raw[len(m.open):], m.close)
		if j < 0 {
			b.pending = &pendingJSP{marker: m, start: start}
			b.pending.buf.WriteString(raw)
			return
		}
		seg := raw[:len(m.open)+j+len(m.close)]
		end := start.Advance(seg)
		b.addJSP(m, seg, token.Span{Start: start, End: end})
		start = end
		raw = raw[len(seg):]
	}
}

// continueJSP feeds raw token text into the pending JSP segment. Tags inside
// a JSP segment are not interpreted.
func (b *builder) continueJSP(raw string) {
	p := b.pending
	m := p.marker
	from := max(len(m.open), p.buf.Len()-len(m.close)+1)
	p.buf.WriteString(raw)

	s := p.buf.String()
	j := strings.Index(s[from:], m.close)
	if j < 0 {
		return
	}
	cut := from + j + len(m.close)
	end := p.start.Advance(s[:cut])
	b.pending = nil
	b.addJSP(m, s[:cut], token.Span{Start: p.start, End: end})
	if rest := s[cut:]; rest != "" {
		b.text(rest, end)
	}
}

func (b *builder) addText(raw string, start token.Position) {
	b.add(&Node{
		Kind: KindText,
		Text: html.UnescapeString(raw),
		Span: token.Span{Start: start, End: start.Advance(raw)},
	})
}

func (b *builder) addJSP(m jspMarker, seg string, span token.Span) {
	inner := seg[len(m.open) : len(seg)-len(m.close)]
	n := &Node{Kind: m.kind, Text: inner, Span: span}
	if m.kind == KindDirective {
		n.Name, n.Attrs = parseDirective(inner)
	}
	b.add(n)
}

// parseDirective splits `page import="a" session="false"` into its name and
// attributes.
func parseDirective(inner string) (string, []Attribute) {
	inner = strings.TrimSpace(inner)
	name := inner
	rest := ""
	if i := strings.IndexAny(inner, " \t\r\n"); i >= 0 {
		name, rest = inner[:i], inner[i:]
	}
	var attrs []Attribute
	for _, m := range directiveAttr.FindAllStringSubmatch(rest, -1) {
		v := m[2]
		if v == "" {
			v = m[3]
		}
		attrs = append(attrs, Attribute{Name: m[1], Value: v})
	}
	return name, attrs
}

func (b *builder) startTag(z *html.Tokenizer, selfClosing bool, span token.Span) {
	name, more := z.TagName()
	n := &Node{Kind: KindElement, Name: string(name), Span: span}
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		n.Attrs = append(n.Attrs, Attribute{Name: string(key), Value: string(val)})
	}
	b.add(n)
	if !selfClosing && !voidElements[n.Name] {
		b.stack = append(b.stack, n)
	}
}

// endTag closes the nearest open element named name along with everything
// opened after it. Unmatched end tags are dropped.
func (b *builder) endTag(name string, end token.Position) {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].Name != name {
			continue
		}
		for _, n := range b.stack[i:] {
			n.Span.End = end
		}
		b.stack = b.stack[:i]
		return
	}
}

func (b *builder) finish() {
	if p := b.pending; p != nil {
		// Unterminated JSP segment: keep it as text.
		b.pending = nil
		b.addText(p.buf.String(), p.start)
	}
	for _, n := range b.stack {
		n.Span.End = b.pos
	}
	b.stack = b.stack[:1]
}
