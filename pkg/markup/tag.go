package markup

import (
	"fmt"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BindingAttr marks elements that are bound to a server-side component. The
// attribute value is the component id.
const BindingAttr = "data-fw-id"

// Attr is a single tag attribute.
type Attr struct {
	Key string
	Val string
}

// Tag is the open tag of an element. Attribute order is preserved so rendered
// output stays stable between renders.
type Tag struct {
	name  string
	attrs []Attr
}

// NewTag constructs a tag with the provided name and attributes. Names are
// normalised to lower case the same way the HTML parser does.
func NewTag(name string, attrs ...Attr) *Tag {
	tag := &Tag{name: normalize(name)}
	for _, attr := range attrs {
		tag.SetAttr(attr.Key, attr.Val)
	}
	return tag
}

// ParseTag parses the first element found in src.
func ParseTag(src string) (*Tag, error) {
	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("markup: parse tag: %w", err)
	}
	for _, node := range nodes {
		if found := firstElement(node); found != nil {
			return TagFromNode(found), nil
		}
	}
	return nil, fmt.Errorf("markup: no element found in %q", src)
}

// TagFromNode copies the name and attributes of an element node.
func TagFromNode(node *xhtml.Node) *Tag {
	if node == nil {
		return nil
	}
	tag := &Tag{name: normalize(node.Data)}
	for _, attr := range node.Attr {
		key := attr.Key
		if attr.Namespace != "" {
			key = attr.Namespace + ":" + attr.Key
		}
		tag.SetAttr(key, attr.Val)
	}
	return tag
}

// ApplyToNode replaces the attributes of node with the tag attributes.
func (t *Tag) ApplyToNode(node *xhtml.Node) {
	if t == nil || node == nil {
		return
	}
	attrs := make([]xhtml.Attribute, 0, len(t.attrs))
	for _, attr := range t.attrs {
		attrs = append(attrs, xhtml.Attribute{Key: attr.Key, Val: attr.Val})
	}
	node.Attr = attrs
}

// Name returns the lower-cased tag name.
func (t *Tag) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Attr returns the attribute value and whether it is present.
func (t *Tag) Attr(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	key = normalize(key)
	for _, attr := range t.attrs {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// SetAttr sets key to val, keeping the attribute position when it already
// exists.
func (t *Tag) SetAttr(key, val string) {
	key = normalize(key)
	if t == nil || key == "" {
		return
	}
	for idx := range t.attrs {
		if t.attrs[idx].Key == key {
			t.attrs[idx].Val = val
			return
		}
	}
	t.attrs = append(t.attrs, Attr{Key: key, Val: val})
}

// RemoveAttr drops key from the tag.
func (t *Tag) RemoveAttr(key string) {
	key = normalize(key)
	if t == nil || key == "" {
		return
	}
	kept := t.attrs[:0]
	for _, attr := range t.attrs {
		if attr.Key != key {
			kept = append(kept, attr)
		}
	}
	t.attrs = kept
}

// Attrs returns a copy of the attributes in order.
func (t *Tag) Attrs() []Attr {
	if t == nil || len(t.attrs) == 0 {
		return nil
	}
	return append([]Attr(nil), t.attrs...)
}

// Clone returns a deep copy of the tag.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	return &Tag{name: t.name, attrs: t.Attrs()}
}

// String renders the open tag.
func (t *Tag) String() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.name)
	for _, attr := range t.attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

func firstElement(node *xhtml.Node) *xhtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == xhtml.ElementNode {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := firstElement(child); found != nil {
			return found
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
