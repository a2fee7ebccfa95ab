// Package dataset holds the timetable shipped inside the binary.
package dataset

import _ "embed"

// Schedule is the bundled course catalog in the course-keyed JSON layout.
//
//go:embed schedule.json
var Schedule []byte
