package schedule

import "sort"

// Schedule is an immutable snapshot of the timetable dataset. Build it with Parse,
// LoadFile or LoadBundled and share the pointer; nothing mutates it afterwards.
type Schedule struct {
	sections []Section
	courses  []Course
	titles   map[string]string
}

func newSchedule(sections []Section) *Schedule {
	s := &Schedule{
		sections: make([]Section, len(sections)),
		titles:   make(map[string]string),
	}
	for i, sec := range sections {
		s.sections[i] = sec.clone()
		if _, exists := s.titles[sec.CourseCode]; !exists {
			s.titles[sec.CourseCode] = sec.CourseTitle
			s.courses = append(s.courses, Course{Code: sec.CourseCode, Title: sec.CourseTitle})
		}
	}
	return s
}

// Sections returns the sections in dataset order. The returned sections, meetings
// included, are copies.
func (s *Schedule) Sections() []Section {
	out := make([]Section, len(s.sections))
	for i, sec := range s.sections {
		out[i] = sec.clone()
	}
	return out
}

// Len returns the number of sections.
func (s *Schedule) Len() int {
	return len(s.sections)
}

// Courses returns one entry per course code, in dataset order.
func (s *Schedule) Courses() []Course {
	out := make([]Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Course looks up a course by its code.
func (s *Schedule) Course(code string) (Course, bool) {
	title, ok := s.titles[code]
	if !ok {
		return Course{}, false
	}
	return Course{Code: code, Title: title}, true
}

// Rooms returns the distinct non-empty rooms, sorted.
func (s *Schedule) Rooms() []string {
	seen := make(map[string]bool)
	var rooms []string
	for _, sec := range s.sections {
		if sec.Room != "" && !seen[sec.Room] {
			seen[sec.Room] = true
			rooms = append(rooms, sec.Room)
		}
	}
	sort.Strings(rooms)
	return rooms
}
