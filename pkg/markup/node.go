package markup

import (
	"strings"

	"github.com/leapstack-labs/leapweb/pkg/token"
)

// Kind identifies the type of a Node.
type Kind int

// Node kinds.
const (
	KindDocument Kind = iota
	KindElement
	KindText
	KindComment
	KindDoctype
	KindDirective  // <%@ name attr="v" %>
	KindExpression // <%= expr %>
	KindScriptlet  // <% code %> and <%! decl %>
)

var kindNames = [...]string{
	KindDocument:   "document",
	KindElement:    "element",
	KindText:       "text",
	KindComment:    "comment",
	KindDoctype:    "doctype",
	KindDirective:  "directive",
	KindExpression: "expression",
	KindScriptlet:  "scriptlet",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Attribute is a name/value pair on an element or directive.
type Attribute struct {
	Name  string
	Value string
}

// Node is a node of the markup tree. Nodes are read-only once Parse returns.
type Node struct {
	Kind Kind
	// Name is the lower-cased tag name for elements and the directive name
	// ("page", "include", "taglib") for directives.
	Name  string
	Attrs []Attribute
	// Text is the content of text, comment, doctype and JSP nodes. For text
	// nodes entities are decoded; JSP content is kept verbatim.
	Text string
	Span token.Span

	Parent   *Node
	Children []*Node
}

// StartLine returns the 1-based line the node starts on.
func (n *Node) StartLine() int { return n.Span.Start.Line }

// EndLine returns the 1-based line the node ends on.
func (n *Node) EndLine() int { return n.Span.End.Line }

// Attr returns the value of the named attribute. Names compare
// case-insensitively.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the node carries the named attribute.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// IsDirective reports whether n is a JSP directive with the given name.
func (n *Node) IsDirective(name string) bool {
	return n.Kind == KindDirective && strings.EqualFold(n.Name, name)
}
