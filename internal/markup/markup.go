// Package markup turns free-form content text into structured nodes.
//
// The syntax is line oriented and deliberately small: a line starting with
// "-" is a list item, "**" toggles bold and "*" toggles italics. Styles are
// assigned by split position, not by matching delimiters, so an unmatched
// delimiter styles the rest of the line.
package markup

import "strings"

const (
	boldDelim   = "**"
	italicDelim = "*"
	bullet      = "-"
)

// Kind identifies the shape of a rendered line.
type Kind int

const (
	KindEmpty Kind = iota
	KindListItem
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindListItem:
		return "list_item"
	case KindParagraph:
		return "paragraph"
	default:
		return "empty"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Style is the emphasis applied to a run.
type Style int

const (
	Plain Style = iota
	Bold
	Italic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "plain"
	}
}

func (s Style) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Run is a contiguous span of text sharing one style.
type Run struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// Node is one rendered line. ListItem nodes carry Text, Paragraph nodes carry Runs.
type Node struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
	Runs []Run  `json:"runs,omitempty"`
}

// ListItem builds a list item node.
func ListItem(text string) Node { return Node{Kind: KindListItem, Text: text} }

// Paragraph builds a paragraph node from runs.
func Paragraph(runs ...Run) Node { return Node{Kind: KindParagraph, Runs: runs} }

// Visible returns the text of the node with markup delimiters removed.
func (n Node) Visible() string {
	if n.Kind != KindParagraph {
		return n.Text
	}
	var b strings.Builder
	for _, r := range n.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Render classifies every line of block and returns the non-empty nodes in
// line order. It never fails and never retains block.
func Render(block string) []Node {
	lines := strings.Split(block, "\n")
	out := make([]Node, 0, len(lines))
	for _, line := range lines {
		if n := renderLine(line); n.Kind != KindEmpty {
			out = append(out, n)
		}
	}
	return out
}

// renderLine applies the line rules in precedence order; first match wins.
func renderLine(line string) Node {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Node{Kind: KindEmpty}
	case strings.HasPrefix(trimmed, bullet):
		return ListItem(strings.TrimSpace(strings.TrimPrefix(trimmed, bullet)))
	case strings.Contains(line, boldDelim):
		return Paragraph(alternate(line, boldDelim, Bold)...)
	case strings.Contains(line, italicDelim):
		return Paragraph(alternate(line, italicDelim, Italic)...)
	default:
		return Paragraph(Run{Style: Plain, Text: line})
	}
}

// alternate splits line on delim; odd spans get style, even spans stay plain.
// Empty spans are kept.
func alternate(line, delim string, style Style) []Run {
	parts := strings.Split(line, delim)
	runs := make([]Run, len(parts))
	for i, p := range parts {
		runs[i] = Run{Style: Plain, Text: p}
		if i%2 == 1 {
			runs[i].Style = style
		}
	}
	return runs
}
