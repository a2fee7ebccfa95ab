package tui

import (
	"fmt"
	"strings"

	"classctl/pkg/schedule"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginBottom(1)
	codeStyle       = lipgloss.NewStyle().Bold(true)
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	instructorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	timesStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var titleCaser = cases.Title(language.English)

// DisplayTitle turns an upper-case dataset title into title case.
func DisplayTitle(title string) string {
	return titleCaser.String(strings.ToLower(title))
}

// RenderSection draws one section as a card.
func RenderSection(s schedule.Section) string {
	heading := s.CourseCode
	if s.Label != "" {
		heading = fmt.Sprintf("%s: %s", s.CourseCode, s.Label)
	}

	instructor := s.Instructor
	if instructor == "" {
		instructor = "TBA"
	}
	room := s.Room
	if room == "" {
		room = "TBA"
	}

	lines := []string{
		codeStyle.Inherit(accentStyle).Render(heading),
		titleStyle.Render(DisplayTitle(s.CourseTitle)),
		instructorStyle.Render(fmt.Sprintf("Room %s, Instructor: %s", room, instructor)),
	}
	if s.Times != "" {
		lines = append(lines, timesStyle.Render("Days & Hours: "+s.Times))
	}
	if s.MidSem != "" || s.Compre != "" {
		lines = append(lines, timesStyle.Render(fmt.Sprintf("Midsem: %s | Compre: %s", s.MidSem, s.Compre)))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RenderSections draws a titled list of cards, or a notice when there is nothing to show.
func RenderSections(title string, sections []schedule.Section) string {
	var b strings.Builder
	b.WriteString(accentStyle.Bold(true).Render(fmt.Sprintf("%s (%d)", title, len(sections))))
	b.WriteString("\n\n")

	if len(sections) == 0 {
		b.WriteString(errorStyle.Render("No classes match."))
		b.WriteString("\n")
		return b.String()
	}

	for _, s := range sections {
		b.WriteString(RenderSection(s))
		b.WriteString("\n")
	}
	return b.String()
}

// DescribeTime renders a day and clock hour, adding the slot number when there is one.
func DescribeTime(c schedule.Criteria) string {
	if c.AnyTime {
		return "any time"
	}
	desc := fmt.Sprintf("%s %02d:00", c.Day, c.Hour)
	if slot, ok := schedule.SlotForHour(c.Hour); ok {
		desc += fmt.Sprintf(" (Hour %d)", slot)
	}
	return desc
}
