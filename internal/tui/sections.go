package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/tui/style"
	"github.com/hanaburkart/portfolio/pkg/collections"
)

// Section is a block of the page.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionProjects
	SectionLeadership
	SectionContact

	sectionCount
)

var sectionTitles = [sectionCount]string{"Home", "About", "Projects", "Leadership", "Contact"}

func (s Section) String() string {
	if s < 0 || s >= sectionCount {
		return "Unknown"
	}
	return sectionTitles[s]
}

// maxContentWidth keeps paragraphs readable on wide terminals.
const maxContentWidth = 100

func contentWidth(termWidth int) int {
	w := min(termWidth, maxContentWidth)
	return max(w, 20)
}

// hero holds the pieces of the home block that change between frames.
type hero struct {
	typed    string
	cursorOn bool
}

func renderHome(p content.Profile, s style.Styles, h hero, width int) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render(p.Name))
	sb.WriteString("\n\n")

	cursor := " "
	if h.cursorOn {
		cursor = s.Cursor.Render("|")
	}
	line := s.Text.Render(p.Tagline+" ") + s.Accent.Render(h.typed) + cursor
	sb.WriteString(lipgloss.NewStyle().Width(width).Render(line))
	sb.WriteString("\n\n")

	sb.WriteString(s.Key.Render("[enter]") + " " + s.Text.Render("View My Work"))
	sb.WriteString("   ")
	sb.WriteString(s.Key.Render("[g]") + " " + s.Text.Render("Get In Touch"))

	if p.ResumePath != "" {
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render("Resume: " + p.ResumePath))
	}

	return sb.String()
}

func renderAbout(p content.Profile, s style.Styles, width int) string {
	paragraphs := collections.Filter(p.About, func(para string) bool {
		return strings.TrimSpace(para) != ""
	})
	wrapped := collections.Apply(paragraphs, func(para string) string {
		return s.Text.Width(width).Render(para)
	})

	return s.Title.Render("About") + "\n\n" + strings.Join(wrapped, "\n\n")
}

func renderProjects(p content.Profile, s style.Styles, width int) string {
	inner := max(width-4, 10) // border and padding
	cards := collections.Apply(p.Projects, func(proj content.Project) string {
		badges := collections.Apply(proj.Tags, func(tag string) string {
			return s.Badge.Render(tag)
		})

		body := []string{
			s.Title.Render(proj.Title),
			s.Text.Width(inner).Render(proj.Description),
		}
		if len(badges) > 0 {
			body = append(body, flow(badges, inner))
		}
		if proj.Image != "" {
			body = append(body, s.Muted.Render(proj.Image))
		}
		return s.Card.Width(width - 2).Render(strings.Join(body, "\n"))
	})

	return s.Title.Render("Projects") + "\n\n" + strings.Join(cards, "\n")
}

func renderLeadership(p content.Profile, s style.Styles, width int) string {
	inner := max(width-4, 10)
	cards := collections.Apply(p.Leadership, func(r content.Role) string {
		return s.Card.Width(width - 2).Render(strings.Join([]string{
			s.Title.Render(r.Org),
			s.Subtitle.Render(r.Role),
			s.Text.Width(inner).Render(r.Description),
		}, "\n"))
	})

	return s.Title.Render("Leadership") + "\n\n" + strings.Join(cards, "\n")
}

func renderContact(p content.Profile, s style.Styles) string {
	var sb strings.Builder

	sb.WriteString(s.Title.Render("Get In Touch"))
	sb.WriteString("\n\n")

	for _, link := range p.Contact.Links() {
		sb.WriteString(s.Key.Render(link.Label))
		sb.WriteString("  ")
		sb.WriteString(s.Text.Render(link.Href))
		sb.WriteString("\n")
	}

	if p.Footer != "" {
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(p.Footer))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// flow lays items out left to right, wrapping before width is exceeded.
func flow(items []string, width int) string {
	var (
		lines []string
		line  string
	)
	for _, item := range items {
		switch {
		case line == "":
			line = item
		case lipgloss.Width(line)+1+lipgloss.Width(item) > width:
			lines = append(lines, line)
			line = item
		default:
			line += " " + item
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
