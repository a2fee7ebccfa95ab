package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// BuildCatalog groups rows by course code in order of first appearance.
func BuildCatalog(rows []Row) []CatalogCourse {
	index := make(map[string]int)
	var courses []CatalogCourse

	for _, r := range rows {
		i, ok := index[r.CourseCode]
		if !ok {
			i = len(courses)
			index[r.CourseCode] = i
			courses = append(courses, CatalogCourse{Code: r.CourseCode, Title: r.CourseTitle})
		}
		courses[i].Sections = append(courses[i].Sections, CatalogSection{
			Section:    r.Section,
			Instructor: r.Instructor,
			Room:       r.Room,
			DaysHours:  r.DaysHours,
		})
	}

	return courses
}

// WriteJSON writes the catalog as a course-keyed JSON object, keeping course order.
func WriteJSON(courses []CatalogCourse, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("{")

	for i, c := range courses {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(c.Code)
		if err != nil {
			return fmt.Errorf("failed to serialize course code: %w", err)
		}
		body, err := json.MarshalIndent(c, "  ", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize course %s: %w", c.Code, err)
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(body)
	}

	buf.WriteString("\n}\n")

	_, err := w.Write(buf.Bytes())
	return err
}
