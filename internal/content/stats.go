package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProjectStats summarizes the project list header.
type ProjectStats struct {
	Projects     int `json:"projects"`
	Technologies int `json:"technologies"`
	Tags         int `json:"tags"`
}

// Stats counts projects, technologies (with repeats across projects) and
// distinct tags.
func Stats(projects []Project) ProjectStats {
	st := ProjectStats{Projects: len(projects)}
	tags := make(map[string]struct{})
	for _, p := range projects {
		st.Technologies += len(p.Technologies)
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
	}
	st.Tags = len(tags)
	return st
}

// TitleFromSlug turns "my-first_post" into "My First Post".
func TitleFromSlug(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(slug))
	return cases.Title(language.English).String(s)
}

// fillTitles derives missing display names from record keys.
func fillTitles(blogs []BlogPost, projects []Project) {
	for i := range blogs {
		if strings.TrimSpace(blogs[i].Title) == "" {
			blogs[i].Title = TitleFromSlug(blogs[i].Slug)
		}
	}
	for i := range projects {
		if strings.TrimSpace(projects[i].Name) == "" {
			projects[i].Name = TitleFromSlug(projects[i].ID)
		}
	}
}
