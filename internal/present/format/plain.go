// Package format writes portfolio records and rendered markup to a terminal.
package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
)

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

const (
	bullet = "• "
	hang   = 2 // display width of bullet
	pad    = "  "
)

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

func wrapWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return width
}

// heading renders s bold. The renderer is bound to w so colour is only
// emitted when w is a terminal.
func heading(w io.Writer, s string) string {
	return lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(s)
}

// WritePlainNodes writes nodes as wrapped text. List items get a bullet and a
// hanging indent; paragraphs drop their emphasis.
func WritePlainNodes(w io.Writer, nodes []markup.Node, width int) error {
	width = wrapWidth(width)
	for _, n := range nodes {
		var line string
		switch n.Kind {
		case markup.KindListItem:
			body := indent.String(wordwrap.String(n.Text, width-hang), hang)
			line = bullet + strings.TrimPrefix(body, pad)
		default:
			line = wordwrap.String(n.Visible(), width)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeParagraphs(w io.Writer, text string, width int) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if err := WritePlainNodes(w, markup.Render(text), width); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeList(w io.Writer, title string, items []string, width int) error {
	if len(items) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, heading(w, title)); err != nil {
		return err
	}
	nodes := make([]markup.Node, len(items))
	for i, it := range items {
		nodes[i] = markup.ListItem(it)
	}
	if err := WritePlainNodes(w, nodes, width); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WritePlainBlog writes a post with its sections rendered through markup.
func WritePlainBlog(w io.Writer, b content.BlogPost, width int) error {
	fmt.Fprintln(w, heading(w, b.Title))
	fmt.Fprintf(w, "By %s | %s\n", b.Author, content.FormatDate(b.PublishedDate))
	if len(b.Keywords) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(b.Keywords, ", "))
	}
	fmt.Fprintln(w)
	if err := writeParagraphs(w, b.Content.Introduction, width); err != nil {
		return err
	}
	for _, s := range b.Content.Sections {
		fmt.Fprintln(w, heading(w, s.Heading))
		if err := writeParagraphs(w, s.Content, width); err != nil {
			return err
		}
	}
	return nil
}

// WritePlainProject writes a project's detail view.
func WritePlainProject(w io.Writer, p content.Project, width int) error {
	fmt.Fprintln(w, heading(w, p.Name))
	fmt.Fprintf(w, "%s | %s\n", p.Category(), strings.Join(p.Technologies, ", "))
	fmt.Fprintln(w)
	for _, part := range []string{p.What, p.Description, p.Goal} {
		if err := writeParagraphs(w, part, width); err != nil {
			return err
		}
	}
	if p.DeployedOn != "" {
		fmt.Fprintf(w, "Deployed on: %s\n\n", p.DeployedOn)
	}
	lists := []struct {
		title string
		items []string
	}{
		{"Team", p.Team},
		{"Key Features", p.Features},
		{"Technical Challenges", p.Challenges},
		{"Key Learnings", p.Learnings},
	}
	for _, l := range lists {
		if err := writeList(w, l.title, l.items, width); err != nil {
			return err
		}
	}
	for _, link := range [][2]string{{"GitHub", p.GithubURL}, {"Live", p.LiveURL}} {
		if link[1] != "" {
			fmt.Fprintf(w, "%s: %s\n", link[0], link[1])
		}
	}
	return nil
}

// TSV columns
const (
	blogHeader    = "slug\tdate\ttitle\n"
	projectHeader = "id\tcategory\tname\ttechnologies\n"
)

// WritePlainBlogs writes one aligned row per post.
func WritePlainBlogs(w io.Writer, blogs []content.BlogPost, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, blogHeader)
	}
	for _, b := range blogs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", esc(b.Slug), esc(b.PublishedDate), esc(b.Title))
	}
	return tw.Flush()
}

// WritePlainProjects writes one aligned row per project.
func WritePlainProjects(w io.Writer, projects []content.Project, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, projectHeader)
	}
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", esc(p.ID), esc(p.Category()), esc(p.Name), esc(strings.Join(p.Technologies, ",")))
	}
	return tw.Flush()
}
