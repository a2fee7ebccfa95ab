package tui

import (
	"fmt"
	"time"

	"classctl/pkg/schedule"

	"github.com/charmbracelet/huh"
)

// DayOptions lists the days Sunday first, labelled by name.
func DayOptions() []huh.Option[time.Weekday] {
	var opts []huh.Option[time.Weekday]
	for d := time.Sunday; d <= time.Saturday; d++ {
		opts = append(opts, huh.NewOption(d.String(), d))
	}
	return opts
}

// HourOptions lists the class periods, each valued by its clock hour.
func HourOptions() []huh.Option[int] {
	var opts []huh.Option[int]
	for _, slot := range schedule.Slots() {
		hour, _ := schedule.ResolveSlot(slot)
		opts = append(opts, huh.NewOption(fmt.Sprintf("Hour %d (%02d:00)", slot, hour), hour))
	}
	return opts
}

// InitialCriteria starts from the default room and the current day and hour.
func InitialCriteria(env *Env) schedule.Criteria {
	now := env.Clock()
	c := schedule.Criteria{Day: now.Weekday(), Hour: now.Hour()}
	if env.Config != nil {
		c.Room = env.Config.DefaultRoom
	}
	return c
}

// RoomSuggestions offers the user's saved rooms first, then every room in the timetable.
func RoomSuggestions(env *Env) []string {
	seen := make(map[string]bool)
	var rooms []string
	add := func(list []string) {
		for _, r := range list {
			if r != "" && !seen[r] {
				seen[r] = true
				rooms = append(rooms, r)
			}
		}
	}
	if env.Config != nil {
		add(env.Config.SavedRooms)
	}
	if env.Schedule != nil {
		add(env.Schedule.Rooms())
	}
	return rooms
}

// RunBrowseTUI lets the user pick a room, day and hour and shows the matching classes,
// re-running the filter every time the selection changes.
func RunBrowseTUI(env *Env) error {
	criteria := InitialCriteria(env)

	for {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search by room").
					Description("Substring match, leave empty for every room.").
					Placeholder("e.g. 6107").
					Suggestions(RoomSuggestions(env)).
					Value(&criteria.Room),

				huh.NewSelect[time.Weekday]().
					Title("Select Day").
					Options(DayOptions()...).
					Value(&criteria.Day),

				huh.NewSelect[int]().
					Title("Select Hour").
					Options(HourOptions()...).
					Value(&criteria.Hour),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		results := schedule.Apply(env.Schedule.Sections(), criteria)
		fmt.Println(RenderSections(browseTitle(criteria), results))

		again, err := confirmAgain()
		if err != nil || !again {
			return err
		}
	}
}

// RunOngoingTUI shows what is happening right now.
func RunOngoingTUI(env *Env) error {
	now := env.Clock()
	results := schedule.Ongoing(env.Schedule.Sections(), now)

	c := schedule.Criteria{Day: now.Weekday(), Hour: now.Hour()}
	fmt.Println(RenderSections("Currently Happening, "+DescribeTime(c), results))
	return nil
}

// RunRoomSearchTUI searches the whole timetable by room regardless of time.
func RunRoomSearchTUI(env *Env) error {
	criteria := schedule.Criteria{AnyTime: true}
	if env.Config != nil {
		criteria.Room = env.Config.DefaultRoom
	}

	for {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search by room").
					Placeholder("e.g. 6107").
					Suggestions(RoomSuggestions(env)).
					Value(&criteria.Room),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		results := schedule.Apply(env.Schedule.Sections(), criteria)
		fmt.Println(RenderSections(browseTitle(criteria), results))

		again, err := confirmAgain()
		if err != nil || !again {
			return err
		}
	}
}

func browseTitle(c schedule.Criteria) string {
	if c.Room == "" {
		return "Classes, " + DescribeTime(c)
	}
	return fmt.Sprintf("Filtered Classes in %q, %s", c.Room, DescribeTime(c))
}

func confirmAgain() (bool, error) {
	again := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Search again?").
				Affirmative("Yes").
				Negative("Back").
				Value(&again),
		),
	).WithTheme(GetTheme()).Run()
	return again, err
}
