package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"classctl/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// SlotLength is how long one class period lasts in the calendar
const SlotLength = 50 * time.Minute

// GenerateICS writes one event per meeting of each section for the given number of weeks,
// starting on the day of from (in from's location). Sections without meetings are skipped.
func GenerateICS(sections []schedule.Section, from time.Time, weeks int, w io.Writer) error {
	if weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc := from.Location()
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	now := time.Now()

	for week := 0; week < weeks; week++ {
		weekStart := start.AddDate(0, 0, 7*week)

		for _, s := range sections {
			for _, m := range s.Meetings {
				offset := (int(m.Day) - int(weekStart.Weekday()) + 7) % 7
				day := weekStart.AddDate(0, 0, offset)
				startAt := time.Date(day.Year(), day.Month(), day.Day(), m.Hour, 0, 0, 0, loc)

				id := fmt.Sprintf("%s-%s-%s", strings.ReplaceAll(s.CourseCode, " ", ""), s.Label, startAt.UTC().Format("20060102T150405Z"))
				event := cal.AddEvent(id)
				event.SetCreatedTime(now)
				event.SetDtStampTime(now)
				event.SetModifiedAt(now)
				event.SetStartAt(startAt)
				event.SetEndAt(startAt.Add(SlotLength))
				event.SetSummary(strings.TrimSpace(fmt.Sprintf("%s %s", s.CourseCode, s.Label)))
				event.SetLocation(s.Room)

				description := fmt.Sprintf("Course: %s\nInstructor: %s", s.CourseTitle, s.Instructor)
				event.SetDescription(description)
			}
		}
	}

	return cal.SerializeTo(w)
}
