package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`,
)

// MarkdownNodes converts nodes back to markdown with emphasis kept and
// consecutive list items in one list.
func MarkdownNodes(nodes []markup.Node) string {
	var b strings.Builder
	for i, blk := range site.Blocks(nodes) {
		if i > 0 {
			b.WriteString("\n")
		}
		if blk.IsList() {
			for _, it := range blk.Items {
				b.WriteString("- " + escapeBlockStart(mdEscaper.Replace(trimLeftSpace(it))) + "\n")
			}
			continue
		}
		start := true
		for _, r := range blk.Para {
			text := r.Text
			if start {
				text = trimLeftSpace(text)
			}
			if text == "" {
				continue
			}
			switch r.Style {
			case markup.Bold:
				b.WriteString(emphasis(text, "**"))
			case markup.Italic:
				b.WriteString(emphasis(text, "*"))
			default:
				text = mdEscaper.Replace(text)
				if start {
					text = escapeBlockStart(text)
				}
				b.WriteString(text)
			}
			start = false
		}
		b.WriteString("\n")
	}
	return b.String()
}

// emphasis wraps text in delim with surrounding whitespace kept outside, so
// the delimiters stay left- and right-flanking.
func emphasis(text, delim string) string {
	core := strings.TrimFunc(text, unicode.IsSpace)
	if core == "" {
		return text
	}
	lead := text[:strings.Index(text, core)]
	trail := text[len(lead)+len(core):]
	return lead + delim + mdEscaper.Replace(core) + delim + trail
}

func trimLeftSpace(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }

// escapeBlockStart escapes a marker that would open a quote, list or
// ordered list at the start of a line.
func escapeBlockStart(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '>', '+', '-':
		return `\` + s
	}
	i := 0
	for i < len(s) && i < 9 && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		return s[:i] + `\` + s[i:]
	}
	return s
}

// MarkdownBlog lays a post out as a markdown document.
func MarkdownBlog(b content.BlogPost) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", mdEscaper.Replace(b.Title))
	fmt.Fprintf(&md, "> **By:** %s | **Published:** %s\n", mdEscaper.Replace(b.Author), content.FormatDate(b.PublishedDate))
	if len(b.Keywords) > 0 {
		fmt.Fprintf(&md, ">\n> **Tags:** %s\n", mdEscaper.Replace(strings.Join(b.Keywords, ", ")))
	}
	md.WriteString("\n---\n\n")
	if intro := markup.Render(b.Content.Introduction); len(intro) > 0 {
		md.WriteString(MarkdownNodes(intro) + "\n")
	}
	for _, s := range b.Content.Sections {
		fmt.Fprintf(&md, "## %s\n\n%s\n", mdEscaper.Replace(s.Heading), MarkdownNodes(markup.Render(s.Content)))
	}
	return md.String()
}

// MarkdownProject lays a project out as a markdown document.
func MarkdownProject(p content.Project) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", mdEscaper.Replace(p.Name))
	fmt.Fprintf(&md, "> **Category:** %s | **Stack:** %s\n\n---\n\n",
		mdEscaper.Replace(p.Category()), mdEscaper.Replace(strings.Join(p.Technologies, ", ")))
	for _, part := range []string{p.What, p.Description, p.Goal} {
		if nodes := markup.Render(part); len(nodes) > 0 {
			md.WriteString(MarkdownNodes(nodes) + "\n")
		}
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
		if len(l.items) == 0 {
			continue
		}
		nodes := make([]markup.Node, len(l.items))
		for i, it := range l.items {
			nodes[i] = markup.ListItem(it)
		}
		fmt.Fprintf(&md, "## %s\n\n%s\n", l.title, MarkdownNodes(nodes))
	}
	if p.GithubURL != "" {
		fmt.Fprintf(&md, "GitHub: <%s>\n\n", p.GithubURL)
	}
	if p.LiveURL != "" {
		fmt.Fprintf(&md, "Live: <%s>\n", p.LiveURL)
	}
	return md.String()
}

// WritePretty renders markdown for the terminal using glamour.
func WritePretty(w io.Writer, md string, width int) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrapWidth(width)),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
