package format

import (
	"fmt"
	"html"
	"io"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
)

// WriteHTMLNodes writes the same fragment the pages embed.
func WriteHTMLNodes(w io.Writer, nodes []markup.Node) error {
	_, err := io.WriteString(w, string(site.NodesHTML(nodes)))
	return err
}

// WriteHTMLProject writes a project's text fields and lists as a fragment.
func WriteHTMLProject(w io.Writer, p content.Project) error {
	var nodes []markup.Node
	for _, part := range []string{p.What, p.Description, p.Goal} {
		nodes = append(nodes, markup.Render(part)...)
	}
	if err := WriteHTMLNodes(w, nodes); err != nil {
		return err
	}
	lists := []struct {
		title string
		items []string
	}{
		{"Key Features", p.Features},
		{"Technical Challenges", p.Challenges},
		{"Key Learnings", p.Learnings},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", html.EscapeString(l.title)); err != nil {
			return err
		}
		items := make([]markup.Node, len(l.items))
		for i, it := range l.items {
			items[i] = markup.ListItem(it)
		}
		if err := WriteHTMLNodes(w, items); err != nil {
			return err
		}
	}
	return nil
}
