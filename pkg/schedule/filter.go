package schedule

import (
	"strings"
	"time"
)

// Criteria holds the user's current selection. AnyTime disables the day/hour restriction.
type Criteria struct {
	Room    string
	Day     time.Weekday
	Hour    int
	AnyTime bool
}

// FilterByRoom returns the sections whose room contains room as a case-sensitive substring.
// An empty room matches every section.
func FilterByRoom(sections []Section, room string) []Section {
	return filter(sections, func(s Section) bool {
		return strings.Contains(s.Room, room)
	})
}

// FilterOngoing returns the sections held on day at the given clock hour.
func FilterOngoing(sections []Section, day time.Weekday, hour int) []Section {
	return filter(sections, func(s Section) bool {
		return s.MeetsAt(day, hour)
	})
}

// FilterByRoomAndTime restricts to sections ongoing at (day, hour), then applies the room filter.
func FilterByRoomAndTime(sections []Section, room string, day time.Weekday, hour int) []Section {
	return FilterByRoom(FilterOngoing(sections, day, hour), room)
}

// Ongoing returns the sections happening at the clock reading now.
func Ongoing(sections []Section, now time.Time) []Section {
	return FilterOngoing(sections, now.Weekday(), now.Hour())
}

// Apply runs the filters selected by c.
func Apply(sections []Section, c Criteria) []Section {
	if c.AnyTime {
		return FilterByRoom(sections, c.Room)
	}
	return FilterByRoomAndTime(sections, c.Room, c.Day, c.Hour)
}

// filter keeps the matching sections in input order. The input is never modified.
func filter(sections []Section, keep func(Section) bool) []Section {
	result := make([]Section, 0, len(sections))
	for _, s := range sections {
		if keep(s) {
			result = append(result, s)
		}
	}
	return result
}
