package site

import (
	"html"
	"html/template"
	"strings"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
)

// Block is a presentation unit: either a run of consecutive list items or a
// single paragraph.
type Block struct {
	Items []string
	Para  []markup.Run
}

// IsList reports whether b is a bullet list.
func (b Block) IsList() bool { return b.Items != nil }

// Blocks groups consecutive list items so they share one list.
func Blocks(nodes []markup.Node) []Block {
	var out []Block
	for _, n := range nodes {
		switch n.Kind {
		case markup.KindListItem:
			if len(out) > 0 && out[len(out)-1].IsList() {
				last := &out[len(out)-1]
				last.Items = append(last.Items, n.Text)
				continue
			}
			out = append(out, Block{Items: []string{n.Text}})
		case markup.KindParagraph:
			out = append(out, Block{Para: n.Runs})
		}
	}
	return out
}

// MarkupHTML renders text through markup.Render into escaped HTML.
func MarkupHTML(text string) template.HTML {
	return NodesHTML(markup.Render(text))
}

// NodesHTML maps nodes to <ul>/<li> and <p> with <strong> and <em> runs.
func NodesHTML(nodes []markup.Node) template.HTML {
	var b strings.Builder
	for _, blk := range Blocks(nodes) {
		if blk.IsList() {
			b.WriteString("<ul>")
			for _, it := range blk.Items {
				b.WriteString("<li>")
				b.WriteString(html.EscapeString(it))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>\n")
			continue
		}
		b.WriteString("<p>")
		for _, r := range blk.Para {
			text := html.EscapeString(r.Text)
			switch r.Style {
			case markup.Bold:
				b.WriteString("<strong>" + text + "</strong>")
			case markup.Italic:
				b.WriteString("<em>" + text + "</em>")
			default:
				b.WriteString(text)
			}
		}
		b.WriteString("</p>\n")
	}
	return template.HTML(b.String())
}
