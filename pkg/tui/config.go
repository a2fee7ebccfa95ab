package tui

import (
	"fmt"
	"strings"
	"time"

	"classctl/pkg/config"
	"classctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations.
// sched may be nil, in which case rooms are typed instead of picked.
func RunConfigTUI(sched *schedule.Schedule) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Room", "room"),
						huh.NewOption("Set Dataset File", "dataset"),
						huh.NewOption("Set Timezone", "timezone"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "room":
			err = runSetDefaultRoomTUI(cfg, sched)
		case "dataset":
			err = runSetDatasetTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "view":
			fmt.Println(DescribeConfig(cfg))
		}

		if err != nil {
			return err
		}
	}
}

// DescribeConfig renders the saved settings for display.
func DescribeConfig(cfg *config.AppConfig) string {
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	var b strings.Builder
	b.WriteString(accentStyle.Render("--- Current Configuration (~/.classctl.json) ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Dataset: %s\n", orDefault(cfg.DatasetPath, "bundled"))
	fmt.Fprintf(&b, "Default Room: %s\n", orDefault(cfg.DefaultRoom, "none"))
	fmt.Fprintf(&b, "Saved Rooms: %s\n", orDefault(strings.Join(cfg.SavedRooms, ", "), "none"))
	fmt.Fprintf(&b, "Timezone: %s\n", orDefault(cfg.Timezone, "local"))
	fmt.Fprintf(&b, "Log Level: %s\n", orDefault(cfg.LogLevel, "warn"))
	fmt.Fprintf(&b, "Accent Color: %s\n", orDefault(cfg.AccentColor, defaultAccent))
	return b.String()
}

func runSetDefaultRoomTUI(cfg *config.AppConfig, sched *schedule.Schedule) error {
	room := cfg.DefaultRoom

	var field huh.Field
	if sched != nil && len(sched.Rooms()) > 0 {
		opts := []huh.Option[string]{huh.NewOption("No default room", "")}
		for _, r := range sched.Rooms() {
			opts = append(opts, huh.NewOption(r, r))
		}
		field = huh.NewSelect[string]().
			Title("Select the room to prefill searches with").
			Options(opts...).
			Filtering(true).
			Height(12).
			Value(&room)
	} else {
		field = huh.NewInput().
			Title("Enter the room to prefill searches with").
			Placeholder("e.g. 6107").
			Value(&room)
	}

	if err := huh.NewForm(huh.NewGroup(field)).WithTheme(GetTheme()).Run(); err != nil {
		return err
	}

	cfg.DefaultRoom = room
	cfg.RememberRoom(room)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default room set to: %q\n", room)))
	return nil
}

func runSetDatasetTUI(cfg *config.AppConfig) error {
	path := cfg.DatasetPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to a timetable dataset (.json, .yaml)").
				Description("Leave empty to use the bundled timetable.").
				Value(&path).
				Validate(func(p string) error {
					if p == "" {
						return nil
					}
					_, err := schedule.LoadFile(p)
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	abs, err := config.AbsDatasetPath(path)
	if err != nil {
		return err
	}
	cfg.DatasetPath = abs
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Dataset saved. It is used from the next run on.\n"))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	tz := cfg.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("IANA timezone used for \"currently happening\"").
				Placeholder("e.g. Asia/Kolkata, empty for local time").
				Value(&tz).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := time.LoadLocation(s)
					return err
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = tz
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timezone set to: %q\n", tz)))
	return nil
}

// accentPresets are the built-in palette entries, keyed by lipgloss ANSI colour.
var accentPresets = []struct{ name, color string }{
	{"Campus Green", "42"},
	{"Violet", "99"},
	{"Ocean Blue", "86"},
	{"Sakura Pink", "205"},
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	choice := cfg.AccentColor
	if choice == "" {
		choice = defaultAccent
	}

	opts := make([]huh.Option[string], 0, len(accentPresets)+1)
	for _, p := range accentPresets {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Render("██")
		opts = append(opts, huh.NewOption(swatch+" "+p.name, p.color))
	}
	opts = append(opts, huh.NewOption("✨ Custom Hex Code", "custom"))

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent colour for forms and cards").
				Options(opts...).
				Value(&choice),
		),
	).WithTheme(GetTheme()).Run()
	if err != nil {
		return err
	}

	if choice == "custom" {
		choice = ""
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hex colour").
					Description("Six hex digits after a #, like #FF00FF").
					Placeholder("#").
					Value(&choice).
					Validate(ValidateHexColor),
			),
		).WithTheme(GetTheme()).Run()
		if err != nil {
			return err
		}
	}

	cfg.AccentColor = choice
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Accent colour set to %s.\n", choice)))
	return nil
}

// ValidateHexColor accepts "#RRGGBB".
func ValidateHexColor(s string) error {
	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("%q is not a hex digit", r)
		}
	}
	return nil
}
