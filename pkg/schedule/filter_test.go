package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// physicsSections mirrors two physics electives that share the T Th F 16:00 slot.
func physicsSections() []Section {
	days, hours := ParseDaysHours("T Th F 9")
	return []Section{
		{
			CourseCode:  "PHY F417",
			CourseTitle: "EXPT METHODS OF PHYSICS",
			Label:       "L1",
			Instructor:  "SRIJATA DEY",
			Room:        "6107",
			Meetings:    crossMeetings(days, hours),
		},
		{
			CourseCode:  "PHY F421",
			CourseTitle: "ADV QUANTUM MECHANICS",
			Label:       "L1",
			Instructor:  "ARPAN DAS",
			Room:        "6108",
			Meetings:    crossMeetings(days, hours),
		},
	}
}

func mixedSections() []Section {
	mk := func(code, room, times string) Section {
		days, hours := ParseDaysHours(times)
		return Section{CourseCode: code, Room: room, Meetings: crossMeetings(days, hours), Times: times}
	}
	return []Section{
		mk("A", "6107", "T Th F 9"),
		mk("B", "5105", "M W F 2"),
		mk("C", "6108", "Th 9"),
		mk("D", "F105", "TBA"),
		mk("E", "A6107", "Th 1 9"),
		mk("F", "", "Th 9"),
	}
}

func codes(sections []Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.CourseCode)
	}
	return out
}

func TestFilterByRoom(t *testing.T) {
	sections := mixedSections()

	got := codes(FilterByRoom(sections, "07"))
	if diff := cmp.Diff([]string{"A", "E"}, got); diff != "" {
		t.Errorf("FilterByRoom mismatch (-want +got):\n%s", diff)
	}

	// Substring matching is case-sensitive.
	if got := FilterByRoom(sections, "f105"); len(got) != 0 {
		t.Errorf("expected case-sensitive room match to find nothing, got %v", codes(got))
	}
}

func TestFilterByRoom_EmptyQueryIsIdentity(t *testing.T) {
	sections := mixedSections()
	got := FilterByRoom(sections, "")

	if diff := cmp.Diff(codes(sections), codes(got)); diff != "" {
		t.Errorf("empty room query should keep every section in order (-want +got):\n%s", diff)
	}
}

func TestFilterByRoom_MatchesSubstringProperty(t *testing.T) {
	sections := mixedSections()
	for _, q := range []string{"", "6", "61", "6107", "A", "x"} {
		got := make(map[string]bool)
		for _, s := range FilterByRoom(sections, q) {
			got[s.CourseCode] = true
		}
		for _, s := range sections {
			want := containsString(s.Room, q)
			if got[s.CourseCode] != want {
				t.Errorf("query %q: section %s in result = %v, want %v", q, s.CourseCode, got[s.CourseCode], want)
			}
		}
	}
}

func TestFilterOngoing(t *testing.T) {
	sections := mixedSections()

	got := codes(FilterOngoing(sections, time.Thursday, 16))
	if diff := cmp.Diff([]string{"A", "C", "E", "F"}, got); diff != "" {
		t.Errorf("FilterOngoing mismatch (-want +got):\n%s", diff)
	}

	// Day alone is not enough.
	if got := FilterOngoing(sections, time.Thursday, 9); len(got) != 0 {
		t.Errorf("expected nothing on Thursday 09:00, got %v", codes(got))
	}
	// Hour alone is not enough.
	if got := codes(FilterOngoing(sections, time.Monday, 16)); len(got) != 0 {
		t.Errorf("expected nothing on Monday 16:00, got %v", got)
	}
}

func TestFilterOngoing_MatchesDayAndHourSets(t *testing.T) {
	sections := mixedSections()
	for day := time.Sunday; day <= time.Saturday; day++ {
		for hour := 0; hour < 24; hour++ {
			in := make(map[string]bool)
			for _, s := range FilterOngoing(sections, day, hour) {
				in[s.CourseCode] = true
			}
			for _, s := range sections {
				want := containsDay(s.Days(), day) && containsHour(s.Hours(), hour)
				if in[s.CourseCode] != want {
					t.Errorf("%v %02d:00: section %s in result = %v, want %v", day, hour, s.CourseCode, in[s.CourseCode], want)
				}
			}
		}
	}
}

func TestFilterByRoomAndTime_IsIntersection(t *testing.T) {
	sections := mixedSections()
	for _, room := range []string{"", "07", "6108", "zzz"} {
		for day := time.Sunday; day <= time.Saturday; day++ {
			for _, hour := range []int{8, 9, 16, 17} {
				combined := codes(FilterByRoomAndTime(sections, room, day, hour))
				reversed := codes(FilterOngoing(FilterByRoom(sections, room), day, hour))
				if diff := cmp.Diff(reversed, combined); diff != "" {
					t.Errorf("room %q %v %d: order of application changed result (-want +got):\n%s", room, day, hour, diff)
				}
			}
		}
	}
}

func TestPhysicsScenario(t *testing.T) {
	sections := physicsSections()

	both := codes(FilterOngoing(sections, time.Thursday, 16))
	if diff := cmp.Diff([]string{"PHY F417", "PHY F421"}, both); diff != "" {
		t.Errorf("expected both physics sections on Thursday 16:00 (-want +got):\n%s", diff)
	}

	only := codes(FilterByRoomAndTime(sections, "07", time.Thursday, 16))
	if diff := cmp.Diff([]string{"PHY F417"}, only); diff != "" {
		t.Errorf("expected only room 6107 with filter \"07\" (-want +got):\n%s", diff)
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, room := range []string{"", "07", "6108"} {
			if got := FilterByRoomAndTime(sections, room, day, 9); len(got) != 0 {
				t.Errorf("expected no sections at 09:00 on %v (room %q), got %v", day, room, codes(got))
			}
		}
	}
}

func TestFiltersDoNotMutateInput(t *testing.T) {
	sections := mixedSections()
	before := codes(sections)

	_ = FilterByRoom(sections, "6")
	_ = FilterOngoing(sections, time.Thursday, 16)
	_ = FilterByRoomAndTime(sections, "07", time.Thursday, 16)

	if diff := cmp.Diff(before, codes(sections)); diff != "" {
		t.Errorf("input slice was modified (-before +after):\n%s", diff)
	}
}

func TestApply(t *testing.T) {
	sections := mixedSections()

	anyTime := codes(Apply(sections, Criteria{Room: "610", AnyTime: true}))
	if diff := cmp.Diff([]string{"A", "C", "E"}, anyTime); diff != "" {
		t.Errorf("AnyTime criteria mismatch (-want +got):\n%s", diff)
	}

	timed := codes(Apply(sections, Criteria{Room: "610", Day: time.Thursday, Hour: 16}))
	if diff := cmp.Diff([]string{"A", "C", "E"}, timed); diff != "" {
		t.Errorf("timed criteria mismatch (-want +got):\n%s", diff)
	}

	friday := codes(Apply(sections, Criteria{Day: time.Friday, Hour: 9}))
	if diff := cmp.Diff([]string{"B"}, friday); diff != "" {
		t.Errorf("friday criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestOngoing(t *testing.T) {
	// 2026-03-05 is a Thursday.
	now := time.Date(2026, 3, 5, 16, 20, 0, 0, time.UTC)
	got := codes(Ongoing(physicsSections(), now))
	if diff := cmp.Diff([]string{"PHY F417", "PHY F421"}, got); diff != "" {
		t.Errorf("Ongoing mismatch (-want +got):\n%s", diff)
	}
}

func containsString(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func containsDay(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

func containsHour(hours []int, h int) bool {
	for _, x := range hours {
		if x == h {
			return true
		}
	}
	return false
}
