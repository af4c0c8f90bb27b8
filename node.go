package styled

import (
	"context"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// Node is the host framework's render representation: anything that can
// write itself to an output stream. It matches the shape of templ-style
// components so adapters stay thin.
type Node interface {
	Render(ctx context.Context, w io.Writer) error
}

// Base is the unit a styled component wraps: a primitive tag or any
// composite the host framework can instantiate with a property bag and
// children. Instantiation failures surface when the returned Node renders;
// this library never wraps or retries them.
type Base interface {
	Instantiate(props Props, children ...Node) Node
}

// DisplayNamer is optionally implemented by bases that carry a
// human-readable name. Used only for diagnostics and trace labels.
type DisplayNamer interface {
	DisplayName() string
}

// BaseFunc adapts a plain instantiation function into a Base.
type BaseFunc func(props Props, children ...Node) Node

// Instantiate calls the function.
func (f BaseFunc) Instantiate(props Props, children ...Node) Node {
	return f(props, children...)
}

// Tag returns a Base for a primitive HTML element. Attributes are rendered
// escaped and in sorted key order; the reserved class and style values are
// serialized with their accumulation-aware representations; void elements
// render without a closing tag.
func Tag(name string) Base {
	return tagBase(name)
}

type tagBase string

func (t tagBase) Instantiate(props Props, children ...Node) Node {
	return &element{tag: string(t), props: props, children: children}
}

func (t tagBase) DisplayName() string { return string(t) }

// voidElements have no content and no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// element is the built-in HTML node produced by Tag bases.
type element struct {
	tag      string
	props    Props
	children []Node
}

func (e *element) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tag)

	for _, key := range sortedKeys(e.props) {
		value := e.props[key]
		if value == nil {
			continue
		}
		writeAttr(&b, key, value)
	}

	if voidElements[e.tag] {
		b.WriteString(">")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteByte('>')
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	for _, child := range e.children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", e.tag)
	return err
}

// writeAttr serializes one attribute. Boolean props follow the HTML idiom:
// true renders the bare attribute, false suppresses it.
func writeAttr(b *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			b.WriteByte(' ')
			b.WriteString(key)
		}
		return
	case Style:
		if len(v) == 0 {
			return
		}
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(renderStyle(v)))
		b.WriteByte('"')
		return
	}

	var text string
	if key == ClassKey {
		text = JoinClasses(value)
	} else {
		text = fmt.Sprint(value)
	}
	if text == "" {
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(text))
	b.WriteByte('"')
}

// renderStyle serializes a style map as "name: value" declarations in
// sorted name order.
func renderStyle(s Style) string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	decls := make([]string, len(names))
	for i, name := range names {
		decls[i] = name + ": " + s[name]
	}
	return strings.Join(decls, "; ")
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Text returns a Node rendering escaped text content.
func Text(s string) Node {
	return textNode(s)
}

type textNode string

func (t textNode) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(string(t)))
	return err
}

// Raw returns a Node writing s verbatim. The caller owns escaping.
func Raw(s string) Node {
	return rawNode(s)
}

type rawNode string

func (r rawNode) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}
