package schedule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const catalogJSON = `{
  "ZOO F101": {
    "course_title": "ZOOLOGY",
    "sections": [
      { "section": "L1", "instructor": "A", "room": "6107", "days_hours": "T Th F 9" },
      { "section": "L1", "instructor": "dup", "room": "9999", "days_hours": "M 1" }
    ]
  },
  "ART F101": {
    "course_title": "ART",
    "sections": [
      { "section": "L1", "instructor": "B", "room": "6108", "days_hours": "M X 2 12" },
      { "section": "T1", "instructor": "C", "room": "", "days_hours": "TBA" }
    ]
  },
  "": {
    "course_title": "NO CODE",
    "sections": [
      { "section": "L1", "instructor": "D", "room": "1", "days_hours": "M 1" }
    ]
  }
}`

const listJSON = `[
  {
    "courseCode": "PHY F417",
    "courseTitle": "EXPT METHODS OF PHYSICS",
    "credits": "3 1 4",
    "instructor": "SRIJATA DEY",
    "room": "6107",
    "days": ["T", "Th", "F"],
    "hours": [16],
    "midsem": "03/10 FN1",
    "compre": "02/12 FN"
  },
  {
    "courseCode": "PHY F421",
    "courseTitle": "ADV QUANTUM MECHANICS",
    "instructor": "ARPAN DAS",
    "room": "6108",
    "days": ["T", "Th", "Q"],
    "hours": [25],
    "slots": [9, 42]
  }
]`

func TestParse_CatalogKeepsOrderAndDropsBadRecords(t *testing.T) {
	sched, err := Parse([]byte(catalogJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var keys []string
	for _, s := range sched.Sections() {
		keys = append(keys, s.Key())
	}
	want := []string{"ZOO F101|L1", "ART F101|L1", "ART F101|T1"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("section keys mismatch (-want +got):\n%s", diff)
	}

	first := sched.Sections()[0]
	if first.Instructor != "A" {
		t.Errorf("expected the first duplicate to win, got instructor %q", first.Instructor)
	}
	if first.Times != "T Th F 9" {
		t.Errorf("expected raw times to be kept, got %q", first.Times)
	}
	wantMeetings := []Meeting{
		{Day: time.Tuesday, Hour: 16},
		{Day: time.Thursday, Hour: 16},
		{Day: time.Friday, Hour: 16},
	}
	if diff := cmp.Diff(wantMeetings, first.Meetings); diff != "" {
		t.Errorf("meetings mismatch (-want +got):\n%s", diff)
	}

	art := sched.Sections()[1]
	if diff := cmp.Diff([]Meeting{{Day: time.Monday, Hour: 9}}, art.Meetings); diff != "" {
		t.Errorf("unknown tokens should be dropped (-want +got):\n%s", diff)
	}

	tba := sched.Sections()[2]
	if len(tba.Meetings) != 0 {
		t.Errorf("expected TBA section to have no meetings, got %v", tba.Meetings)
	}
}

func TestParse_ListLayout(t *testing.T) {
	sched, err := Parse([]byte(listJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sched.Len() != 2 {
		t.Fatalf("expected 2 sections, got %d", sched.Len())
	}

	phy := sched.Sections()[0]
	if phy.Credits != "3 1 4" || phy.MidSem != "03/10 FN1" || phy.Compre != "02/12 FN" {
		t.Errorf("exam and credit fields not carried over: %+v", phy)
	}
	if phy.Times != "T Th F 16:00" {
		t.Errorf("expected display times 'T Th F 16:00', got %q", phy.Times)
	}
	if !phy.MeetsAt(time.Thursday, 16) {
		t.Errorf("expected PHY F417 to meet Thursday 16:00")
	}

	qm := sched.Sections()[1]
	if diff := cmp.Diff([]time.Weekday{time.Tuesday, time.Thursday}, qm.Days()); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{16}, qm.Hours()); diff != "" {
		t.Errorf("out of range hours and slots should be dropped (-want +got):\n%s", diff)
	}

	got := FilterByRoomAndTime(sched.Sections(), "07", time.Thursday, 16)
	if len(got) != 1 || got[0].CourseCode != "PHY F417" {
		t.Errorf("expected only PHY F417 in room *07*, got %+v", got)
	}
}

func TestParse_YAMLCatalog(t *testing.T) {
	data := `
PHY F421:
  course_title: ADV QUANTUM MECHANICS
  sections:
    - section: L1
      instructor: ARPAN DAS
      room: "6108"
      days_hours: T Th F 9
PHY F417:
  course_title: EXPT METHODS OF PHYSICS
  sections:
    - section: L1
      instructor: SRIJATA DEY
      room: "6107"
      days_hours: T Th F 9
`
	sched, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var got []string
	for _, c := range sched.Courses() {
		got = append(got, c.Code)
	}
	if diff := cmp.Diff([]string{"PHY F421", "PHY F417"}, got); diff != "" {
		t.Errorf("YAML course order mismatch (-want +got):\n%s", diff)
	}

	course, ok := sched.Course("PHY F417")
	if !ok || course.Title != "EXPT METHODS OF PHYSICS" {
		t.Errorf("course lookup failed: %+v %v", course, ok)
	}
}

func TestParse_YAMLList(t *testing.T) {
	data := `
- courseCode: PHY F417
  courseTitle: EXPT METHODS OF PHYSICS
  room: "6107"
  days: [T, Th, F]
  hours: [16]
`
	sched, err := Parse([]byte(data), FormatYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sched.Len() != 1 || !sched.Sections()[0].MeetsAt(time.Friday, 16) {
		t.Errorf("unexpected YAML list result: %+v", sched.Sections())
	}
}

func TestParse_SkipsMalformedRecords(t *testing.T) {
	list := `[
  { "courseCode": "PHY F417", "room": "6107", "days": ["Th"], "hours": [16] },
  { "courseCode": "PHY F421", "room": "6108", "days": ["Th"], "hours": ["16"] },
  { "courseCode": "CS F211", "room": "6105", "days": ["M"], "slots": [1] }
]`
	catalog := `{
  "PHY F421": {
    "course_title": "ADV QUANTUM MECHANICS",
    "sections": [
      { "section": "L1", "room": 6108, "days_hours": "T Th F 9" },
      { "section": "T1", "room": "6105", "days_hours": "M 1" }
    ]
  },
  "MATH F211": { "course_title": 42, "sections": [] },
  "PHY F417": {
    "course_title": "EXPT METHODS OF PHYSICS",
    "sections": [ { "section": "L1", "room": "6107", "days_hours": "T Th F 9" } ]
  }
}`
	yamlList := `
- courseCode: PHY F417
  days: [Th]
  hours: [sixteen]
- courseCode: CS F211
  days: [M]
  slots: [1]
`

	tests := []struct {
		name   string
		data   string
		format Format
		want   []string
	}{
		{"json list", list, FormatJSON, []string{"PHY F417|", "CS F211|"}},
		{"json catalog", catalog, FormatJSON, []string{"PHY F421|T1", "PHY F417|L1"}},
		{"yaml list", yamlList, FormatYAML, []string{"CS F211|"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("expected malformed records to be skipped, got error: %v", err)
			}
			var keys []string
			for _, s := range sched.Sections() {
				keys = append(keys, s.Key())
			}
			if diff := cmp.Diff(tt.want, keys); diff != "" {
				t.Errorf("section keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_FreeTextRoomsAndLabels(t *testing.T) {
	room := strings.Repeat("Lecture Theatre Complex, Ground Floor ", 3)
	label := strings.Repeat("Tutorial ", 5)
	data := `[{"courseCode": "HSS F222", "section": "` + label + `", "room": "` + room + `"}]`

	sched, err := Parse([]byte(data), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sched.Len() != 1 || sched.Sections()[0].Room != room {
		t.Errorf("expected long room and label to be kept, got %+v", sched.Sections())
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := map[string]string{
		"empty":   "   ",
		"invalid": "invalid json { content",
		"scalar":  `"just a string"`,
	}
	for name, in := range inputs {
		if _, err := Parse([]byte(in), FormatJSON); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}

	if _, err := Parse([]byte("just text"), FormatYAML); err == nil {
		t.Errorf("expected YAML scalar to be rejected")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "schedule.json")
	if err := os.WriteFile(jsonPath, []byte(listJSON), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	sched, err := LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if sched.Len() != 2 {
		t.Errorf("expected 2 sections, got %d", sched.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("expected error for missing dataset file")
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("a/b.YAML") != FormatYAML || FormatFromPath("x.yml") != FormatYAML {
		t.Errorf("expected yaml extensions to select FormatYAML")
	}
	if FormatFromPath("x.json") != FormatJSON || FormatFromPath("x") != FormatJSON {
		t.Errorf("expected other extensions to select FormatJSON")
	}
}

func TestLoadBundled(t *testing.T) {
	sched, err := LoadBundled()
	if err != nil {
		t.Fatalf("LoadBundled failed: %v", err)
	}
	if sched.Len() == 0 {
		t.Fatalf("bundled dataset is empty")
	}

	got := codes(FilterOngoing(sched.Sections(), time.Thursday, 16))
	if diff := cmp.Diff([]string{"PHY F417", "PHY F421"}, got); diff != "" {
		t.Errorf("bundled Thursday 16:00 mismatch (-want +got):\n%s", diff)
	}

	got = codes(FilterByRoomAndTime(sched.Sections(), "07", time.Thursday, 16))
	if diff := cmp.Diff([]string{"PHY F417"}, got); diff != "" {
		t.Errorf("bundled room filter mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduleSectionsIsACopy(t *testing.T) {
	sched, err := Parse([]byte(listJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	s := sched.Sections()
	s[0].Room = "changed"
	if sched.Sections()[0].Room != "6107" {
		t.Errorf("mutating the returned slice changed the schedule")
	}

	s[0].Meetings[0] = Meeting{Day: time.Sunday, Hour: 3}
	if got := sched.Sections()[0].Meetings[0]; got != (Meeting{Day: time.Tuesday, Hour: 16}) {
		t.Errorf("mutating a returned meeting changed the schedule: %+v", got)
	}

	if diff := cmp.Diff([]string{"6107", "6108"}, sched.Rooms()); diff != "" {
		t.Errorf("rooms mismatch (-want +got):\n%s", diff)
	}
}
