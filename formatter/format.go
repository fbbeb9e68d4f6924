package formatter

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

const indentUnit = "  "

// state is the traversal context handed down to each child. It is passed by
// value so siblings never observe changes made inside a neighbouring subtree.
type state struct {
	indent int
	// nearestTag is the name of the enclosing element.
	nearestTag string
	// preDepth is > 0 anywhere inside a <pre>; no newlines or indentation
	// are injected there.
	preDepth int
}

func (s state) child(tag string, preDepth int) state {
	return state{indent: s.indent + 1, nearestTag: tag, preDepth: preDepth}
}

type walker struct {
	opts Options
	b    strings.Builder
}

// Format renders tree in the diffable layout: every structural node starts on
// its own line, indented two spaces per level, except inside whitespace
// sensitive regions. The result has no leading or trailing whitespace.
func Format(tree *Fragment, opts Options) string {
	if tree == nil {
		return ""
	}
	w := &walker{opts: opts}
	for _, n := range tree.Children {
		w.node(n, state{})
	}
	return strings.TrimSpace(w.b.String())
}

// FormatMarkup parses markup and formats the resulting tree. Markup the
// parser cannot read yields the empty string.
func FormatMarkup(markup string, opts Options) string {
	tree, err := Parse(markup)
	if err != nil {
		return ""
	}
	return Format(tree, opts)
}

func (w *walker) node(n Node, s state) {
	switch n := n.(type) {
	case *Text:
		w.text(n, s)
	case *Comment:
		w.comment(n, s)
	case *Element:
		w.element(n, s)
	}
}

func (w *walker) newline(indent int) {
	w.b.WriteByte('\n')
	w.b.WriteString(strings.Repeat(indentUnit, indent))
}

func (w *walker) text(n *Text, s state) {
	if strings.TrimSpace(n.Value) == "" {
		return
	}
	value := n.Value
	if w.opts.EscapeInnerText {
		value = escapeText(value)
	}
	if s.preDepth > 0 || w.opts.TagsWithWhitespacePreserved.Contains(s.nearestTag) {
		w.b.WriteString(value)
		return
	}
	w.newline(s.indent)
	w.b.WriteString(strings.TrimSpace(value))
}

func (w *walker) comment(n *Comment, s state) {
	w.newline(s.indent)
	if strings.TrimSpace(n.Data) == "" {
		w.b.WriteString("<!---->")
		return
	}
	w.b.WriteString("<!--")
	w.b.WriteString(reindentComment(n.Data, s.indent))
	w.b.WriteString("-->")
}

// reindentComment lines the interior of a multi-line comment up one level
// deeper than the comment itself and aligns the closer with the opener.
func reindentComment(data string, indent int) string {
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		if i == len(lines)-1 {
			lines[i] = strings.TrimSpace(line)
			continue
		}
		lines[i] = strings.Repeat(indentUnit, indent+1) + strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	comment := strings.Join(lines, "\n")
	if !strings.HasPrefix(comment, "\n") {
		comment = " " + comment
	}
	if strings.HasSuffix(comment, "\n") {
		comment += strings.Repeat(indentUnit, indent)
	} else {
		comment += " "
	}
	return comment
}

func (w *walker) element(n *Element, s state) {
	var (
		tag         = n.Name
		isVoid      = IsVoidElement(tag)
		isSVG       = IsSelfClosingSVGElement(tag)
		isRawText   = IsRawTextElement(tag)
		isPreserved = w.opts.TagsWithWhitespacePreserved.Contains(tag)
		hasChildren = len(n.Children) > 0
		mode        = w.opts.VoidElements
	)

	selfClose := (isSVG && (mode == VoidHTML || mode == VoidXHTML)) ||
		(isVoid && mode == VoidXHTML) ||
		(!isVoid && w.opts.SelfClosingTag && !hasChildren && !isRawText)

	if s.preDepth == 0 {
		w.newline(s.indent)
	}
	w.b.WriteString("<" + tag)
	w.attributes(n.Attributes, s.indent, selfClose)
	if selfClose {
		return
	}

	inPre := tag == "pre" || s.preDepth > 0
	childPre := s.preDepth
	if inPre {
		childPre++
	}
	for _, c := range n.Children {
		w.node(c, s.child(tag, childPre))
	}

	switch {
	case isPreserved && !isVoid,
		!isVoid && !hasChildren,
		mode == VoidClosingTag && (isVoid || isSVG),
		inPre && !isVoid:
		w.b.WriteString("</" + tag + ">")
	case !isVoid:
		w.newline(s.indent)
		w.b.WriteString("</" + tag + ">")
	}
}

func (w *walker) attributes(attrs []Attr, indent int, selfClose bool) {
	bracket := ">"
	if selfClose {
		bracket = " />"
	}
	if len(attrs) == 0 {
		w.b.WriteString(bracket)
		return
	}

	wrap := len(attrs) > w.opts.AttributesPerLine
	for _, a := range attrs {
		if wrap {
			w.newline(indent + 1)
		} else {
			w.b.WriteByte(' ')
		}
		w.b.WriteString(w.attribute(a))
	}
	if wrap {
		w.newline(indent)
		w.b.WriteString(strings.TrimSpace(bracket))
		return
	}
	w.b.WriteString(bracket)
}

// attribute renders a single attribute. Only the double quote is escaped in
// values so the rest of the value stays as written.
func (w *walker) attribute(a Attr) string {
	if a.Value != "" || w.opts.EmptyAttributes {
		return a.Name + `="` + strings.ReplaceAll(a.Value, `"`, "&quot;") + `"`
	}
	return a.Name
}

func escapeText(s string) string {
	return html.EscapeString(s)
}
