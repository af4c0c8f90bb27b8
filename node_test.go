package styled

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderToString(t *testing.T, n Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(context.Background(), &sb))
	return sb.String()
}

func TestTagRender(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		props    Props
		children []Node
		want     string
	}{
		{
			name:  "attributes sorted and escaped",
			tag:   "a",
			props: Props{"href": "/x?a=1&b=2", "class": "link"},
			want:  `<a class="link" href="/x?a=1&amp;b=2"></a>`,
		},
		{
			name:  "bool true renders bare attribute",
			tag:   "input",
			props: Props{"required": true, "type": "text"},
			want:  `<input required type="text">`,
		},
		{
			name:  "bool false suppresses the attribute",
			tag:   "input",
			props: Props{"required": false},
			want:  `<input>`,
		},
		{
			name:  "nil value suppresses the attribute",
			tag:   "div",
			props: Props{"id": nil},
			want:  `<div></div>`,
		},
		{
			name:  "style map serializes sorted",
			tag:   "div",
			props: Props{"style": Style{"width": "1rem", "color": "red"}},
			want:  `<div style="color: red; width: 1rem"></div>`,
		},
		{
			name:  "empty style suppressed",
			tag:   "div",
			props: Props{"style": Style{}},
			want:  `<div></div>`,
		},
		{
			name:  "class value flattens through JoinClasses",
			tag:   "div",
			props: Props{"class": ClassMap{"b": true, "a": true}},
			want:  `<div class="a b"></div>`,
		},
		{
			name:  "empty class suppressed",
			tag:   "div",
			props: Props{"class": ""},
			want:  `<div></div>`,
		},
		{
			name: "void element has no closing tag",
			tag:  "br",
			want: `<br>`,
		},
		{
			name:     "children render in order, nil skipped",
			tag:      "p",
			children: []Node{Text("a "), nil, Raw("<b>c</b>")},
			want:     `<p>a <b>c</b></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Tag(tt.tag).Instantiate(tt.props, tt.children...)
			assert.Equal(t, tt.want, renderToString(t, node))
		})
	}
}

func TestText_Escapes(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", renderToString(t, Text("a <b> & c")))
}

func TestRaw_Verbatim(t *testing.T) {
	assert.Equal(t, "<b>bold</b>", renderToString(t, Raw("<b>bold</b>")))
}

func TestBaseFunc(t *testing.T) {
	base := BaseFunc(func(props Props, children ...Node) Node {
		return Text(props["label"].(string))
	})

	node := base.Instantiate(Props{"label": "hi"})
	assert.Equal(t, "hi", renderToString(t, node))
}

func TestTag_DisplayName(t *testing.T) {
	namer, ok := Tag("button").(DisplayNamer)
	require.True(t, ok)
	assert.Equal(t, "button", namer.DisplayName())
}
