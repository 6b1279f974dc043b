package present

import (
	"io"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/present/format"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeHTML
)

var modeNames = map[Mode]string{
	ModePlain:  "plain",
	ModePretty: "pretty",
	ModeJSON:   "json",
	ModeHTML:   "html",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "plain"
}

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	// Width is the wrap width for plain and pretty output.
	Width int
}

// ParseMode parses a string like "plain", "pretty", "json", "html".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "html":
		return ModeHTML, true
	default:
		return ModePlain, false
	}
}

// RenderNodes renders markup output according to options.
func RenderNodes(w io.Writer, nodes []markup.Node, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		if nodes == nil {
			nodes = []markup.Node{}
		}
		return format.WriteJSON(w, nodes, opts.JSONIndent)
	case ModePretty:
		return format.WritePretty(w, format.MarkdownNodes(nodes), opts.Width)
	case ModeHTML:
		return format.WriteHTMLNodes(w, nodes)
	default:
		return format.WritePlainNodes(w, nodes, opts.Width)
	}
}

// RenderBlog renders a single post according to options.
func RenderBlog(w io.Writer, b content.BlogPost, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, b, opts.JSONIndent)
	case ModePretty:
		return format.WritePretty(w, format.MarkdownBlog(b), opts.Width)
	case ModeHTML:
		for _, s := range b.Content.Sections {
			if err := format.WriteHTMLNodes(w, markup.Render(s.Content)); err != nil {
				return err
			}
		}
		return nil
	default:
		return format.WritePlainBlog(w, b, opts.Width)
	}
}

// RenderProject renders a single project according to options.
func RenderProject(w io.Writer, p content.Project, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSON(w, p, opts.JSONIndent)
	case ModePretty:
		return format.WritePretty(w, format.MarkdownProject(p), opts.Width)
	case ModeHTML:
		return format.WriteHTMLProject(w, p)
	default:
		return format.WritePlainProject(w, p, opts.Width)
	}
}

// RenderBlogs renders a list of posts according to options.
func RenderBlogs(w io.Writer, blogs []content.BlogPost, opts Options) error {
	if opts.Mode == ModeJSON {
		if blogs == nil {
			blogs = []content.BlogPost{}
		}
		return format.WriteJSON(w, blogs, opts.JSONIndent)
	}
	return format.WritePlainBlogs(w, blogs, opts.Headers)
}

// RenderProjects renders a list of projects according to options.
func RenderProjects(w io.Writer, projects []content.Project, opts Options) error {
	if opts.Mode == ModeJSON {
		if projects == nil {
			projects = []content.Project{}
		}
		return format.WriteJSON(w, projects, opts.JSONIndent)
	}
	return format.WritePlainProjects(w, projects, opts.Headers)
}
