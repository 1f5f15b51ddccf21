package store

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/gannonh/kata-tui/internal/model"
)

type projectSection struct {
	title string
	// body is the raw markdown between this heading and the next one.
	body string
}

// ParseProject reads PROJECT.md. The first level-one heading names the
// project; sections are matched by title.
func ParseProject(src []byte) (model.Project, error) {
	doc, err := parseMarkdown(src)
	if err != nil {
		return model.Project{}, err
	}

	var p model.Project
	var sections []projectSection

	type mark struct {
		heading   *ast.Heading
		bodyStart int
		lineStart int
	}
	var marks []mark
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		first := h.Lines().At(0)
		last := h.Lines().At(h.Lines().Len() - 1)
		marks = append(marks, mark{
			heading:   h,
			lineStart: lineStart(src, first.Start),
			bodyStart: lineEnd(src, last.Stop),
		})
	}

	for i, m := range marks {
		title := nodeText(m.heading, src)
		if m.heading.Level == 1 && p.Name == "" {
			p.Name = title
			continue
		}
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		start := m.bodyStart
		if start > end {
			start = end
		}
		sections = append(sections, projectSection{
			title: title,
			body:  trimSetextUnderline(string(src[start:end])),
		})
	}

	whatItIs := ""
	for _, s := range sections {
		t := strings.ToLower(s.title)
		switch {
		case strings.Contains(t, "core value"):
			p.Description = s.body
		case strings.Contains(t, "what this is"), strings.Contains(t, "description"):
			whatItIs = s.body
		case strings.Contains(t, "problem"):
			p.Problem = s.body
		case strings.Contains(t, "solution"):
			p.Solution = s.body
		}
	}
	if p.Description == "" {
		p.Description = whatItIs
	}
	return p, nil
}

// trimSetextUnderline drops a leading "===" / "---" line left behind by a
// setext heading and any trailing thematic break, then trims whitespace.
func trimSetextUnderline(body string) string {
	trimmed := strings.TrimLeft(body, "\r\n")
	line, rest, _ := strings.Cut(trimmed, "\n")
	if isRule(line) {
		trimmed = rest
	}
	trimmed = strings.TrimSpace(trimmed)
	for {
		i := strings.LastIndexByte(trimmed, '\n')
		if !isRule(trimmed[i+1:]) {
			break
		}
		if i < 0 {
			return ""
		}
		trimmed = strings.TrimSpace(trimmed[:i])
	}
	return trimmed
}

func isRule(line string) bool {
	l := strings.TrimSpace(line)
	return len(l) >= 3 && (strings.Trim(l, "=") == "" || strings.Trim(l, "-") == "")
}
