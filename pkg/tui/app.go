package tui

import (
	"time"

	"classctl/pkg/config"
	"classctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultAccent = "42"

var (
	// These act as fallbacks until GetTheme picks up the saved accent colour
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Env carries what every screen needs: the loaded schedule, the run configuration and a clock.
type Env struct {
	Schedule *schedule.Schedule
	Config   *config.AppConfig
	Location *time.Location
	Now      func() time.Time
}

// Clock returns the current time in the configured timezone.
func (e *Env) Clock() time.Time {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	loc := e.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// GetTheme loads the user's saved accent colour and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.Load()
	baseColor := defaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Keep plain printed output in the same colour as the forms
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu and keeps returning to it until the user quits.
func RunTUI(env *Env) error {
	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Class Schedule").
					Options(
						huh.NewOption("🔎 Browse by room and time", "browse"),
						huh.NewOption("⏰ Currently happening", "now"),
						huh.NewOption("🚪 Search by room", "room"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "browse":
			err = RunBrowseTUI(env)
		case "now":
			err = RunOngoingTUI(env)
		case "room":
			err = RunRoomSearchTUI(env)
		case "config":
			err = RunConfigTUI(env.Schedule)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}
