package importer

// Row is one section line read from a timetable table
type Row struct {
	CourseCode  string
	CourseTitle string
	Section     string
	Instructor  string
	Room        string
	DaysHours   string // "T Th F 9"
}

// CatalogSection matches the section entries of the course-keyed dataset
type CatalogSection struct {
	Section    string `json:"section"`
	Instructor string `json:"instructor"`
	Room       string `json:"room"`
	DaysHours  string `json:"days_hours"`
}

// CatalogCourse matches one course entry of the course-keyed dataset
type CatalogCourse struct {
	Code     string           `json:"-"`
	Title    string           `json:"course_title"`
	Sections []CatalogSection `json:"sections"`
}
