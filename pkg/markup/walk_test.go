package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
	skip   string
}

func (r *recorder) Enter(n *Node) bool {
	r.events = append(r.events, "enter:"+label(n))
	return n.Name != r.skip || r.skip == ""
}

func (r *recorder) Leave(n *Node) {
	r.events = append(r.events, "leave:"+label(n))
}

func label(n *Node) string {
	if n.Kind == KindElement {
		return n.Name
	}
	return n.Kind.String()
}

func TestTraverse_Order(t *testing.T) {
	doc, err := ParseString("<a><b></b></a><c></c>")
	require.NoError(t, err)

	r := &recorder{}
	Traverse(doc, r)
	assert.Equal(t, []string{
		"enter:document",
		"enter:a", "enter:b", "leave:b", "leave:a",
		"enter:c", "leave:c",
		"leave:document",
	}, r.events)
}

func TestTraverse_SkipChildren(t *testing.T) {
	doc, err := ParseString("<a><b></b></a><c></c>")
	require.NoError(t, err)

	r := &recorder{skip: "a"}
	Traverse(doc, r)
	assert.Equal(t, []string{
		"enter:document",
		"enter:a", "leave:a",
		"enter:c", "leave:c",
		"leave:document",
	}, r.events)
}

func TestWalk_SkipSubtree(t *testing.T) {
	doc, err := ParseString("<a><b></b></a><c></c>")
	require.NoError(t, err)

	var seen []string
	Walk(doc, func(n *Node) bool {
		seen = append(seen, label(n))
		return n.Name != "a"
	})
	assert.Equal(t, []string{"document", "a", "c"}, seen)
}

func TestWalk_Nil(t *testing.T) {
	called := false
	Walk(nil, func(*Node) bool { called = true; return true })
	assert.False(t, called)
}
