package formatter

// Node is one node of a markup tree: *Element, *Text or *Comment.
// A *Fragment is only ever the root and never appears as a child.
type Node interface {
	node()
}

// Fragment is the root container holding the top-level sibling nodes.
type Fragment struct {
	Children []Node
}

// Attr is a single attribute in source order. Value is empty for
// valueless attributes such as `disabled`.
type Attr struct {
	Name  string
	Value string
}

// Element represents a markup element and its ordered children.
type Element struct {
	Name       string
	Attributes []Attr
	Children   []Node
}

// Text holds raw character data, possibly whitespace only.
type Text struct {
	Value string
}

// Comment holds the payload between `<!--` and `-->` verbatim.
type Comment struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// NewFragment builds a root holding children.
func NewFragment(children ...Node) *Fragment {
	return &Fragment{Children: children}
}

// NewElement is a shorthand for building trees by hand.
func NewElement(name string, attrs []Attr, children ...Node) *Element {
	return &Element{Name: name, Attributes: attrs, Children: children}
}
