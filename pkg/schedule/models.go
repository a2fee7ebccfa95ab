package schedule

import "time"

// Meeting is one weekly occurrence of a section: a day and a 24-hour clock hour.
type Meeting struct {
	Day  time.Weekday `json:"day"`
	Hour int          `json:"hour"`
}

// Section represents one scheduled meeting-section of a course
type Section struct {
	CourseCode  string
	CourseTitle string
	Label       string // "L1", "T3", ...
	Instructor  string
	Room        string // "6107"
	Meetings    []Meeting
	Times       string // Raw text e.g. "T Th F 9", display only
	Credits     string // "3 1 4"
	MidSem      string // "03/10 FN1"
	Compre      string // "02/12 FN"
}

// Course is the title lookup for a course code
type Course struct {
	Code  string
	Title string
}

// Key identifies a section within one dataset snapshot.
func (s Section) Key() string {
	return s.CourseCode + "|" + s.Label
}

// Days returns the distinct days the section meets on, in meeting order.
func (s Section) Days() []time.Weekday {
	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	for _, m := range s.Meetings {
		if !seen[m.Day] {
			seen[m.Day] = true
			days = append(days, m.Day)
		}
	}
	return days
}

// Hours returns the distinct clock hours the section meets at, in meeting order.
func (s Section) Hours() []int {
	seen := make(map[int]bool)
	var hours []int
	for _, m := range s.Meetings {
		if !seen[m.Hour] {
			seen[m.Hour] = true
			hours = append(hours, m.Hour)
		}
	}
	return hours
}

// MeetsAt reports whether the section is held on day at the given clock hour.
func (s Section) MeetsAt(day time.Weekday, hour int) bool {
	for _, m := range s.Meetings {
		if m.Day == day && m.Hour == hour {
			return true
		}
	}
	return false
}

// clone returns s with its own copy of the meetings.
func (s Section) clone() Section {
	if s.Meetings != nil {
		s.Meetings = append([]Meeting(nil), s.Meetings...)
	}
	return s
}

// crossMeetings builds the canonical meeting list from independently resolved days and hours.
func crossMeetings(days []time.Weekday, hours []int) []Meeting {
	if len(days) == 0 || len(hours) == 0 {
		return nil
	}
	meetings := make([]Meeting, 0, len(days)*len(hours))
	seen := make(map[Meeting]bool)
	for _, d := range days {
		for _, h := range hours {
			m := Meeting{Day: d, Hour: h}
			if !seen[m] {
				seen[m] = true
				meetings = append(meetings, m)
			}
		}
	}
	return meetings
}
