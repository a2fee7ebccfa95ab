package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// column header keywords, matched case-insensitively against the header cells in this order
var headerKeys = []struct {
	name     string
	keywords []string
}{
	{"code", []string{"course no", "course code", "code"}},
	{"title", []string{"title"}},
	{"section", []string{"sec"}},
	{"instructor", []string{"instructor", "faculty"}},
	{"room", []string{"room"}},
	{"days", []string{"days", "time"}},
}

// ParseHTML reads the first table with a recognizable header row and returns its section rows.
// Rows with an empty course code continue the previous course; rows without a section label
// (co-instructor lines) are skipped.
func ParseHTML(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var rows []Row
	found := false

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		var columns map[string]int
		var current Row

		table.Find("tr").Each(func(j int, tr *goquery.Selection) {
			cells := tr.Find("th, td")
			if columns == nil {
				columns = headerColumns(cells)
				return
			}

			cell := func(name string) string {
				idx, ok := columns[name]
				if !ok || idx >= cells.Length() {
					return ""
				}
				return strings.Join(strings.Fields(cells.Eq(idx).Text()), " ")
			}

			if code := cell("code"); code != "" {
				current = Row{CourseCode: code, CourseTitle: cell("title")}
			}
			if current.CourseCode == "" {
				return
			}

			section := cell("section")
			if section == "" {
				return
			}

			row := current
			row.Section = section
			row.Instructor = cell("instructor")
			row.Room = cell("room")
			row.DaysHours = cell("days")
			rows = append(rows, row)
		})

		if columns != nil {
			found = true
			return false
		}
		return true
	})

	if !found {
		return nil, fmt.Errorf("no timetable table with a course code column found")
	}

	return deduplicateRows(rows), nil
}

// headerColumns maps the known column names to cell positions. It returns nil when the
// row lacks a course code column, so the next row is tried as header.
func headerColumns(cells *goquery.Selection) map[string]int {
	columns := make(map[string]int)
	cells.Each(func(i int, c *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(c.Text()))
		if text == "" {
			return
		}
		for _, h := range headerKeys {
			if _, taken := columns[h.name]; taken {
				continue
			}
			if containsAny(text, h.keywords) {
				columns[h.name] = i
				return
			}
		}
	})
	if _, ok := columns["code"]; !ok {
		return nil
	}
	return columns
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// deduplicateRows keeps the first row for each course and section.
func deduplicateRows(rows []Row) []Row {
	seen := make(map[string]bool)
	var unique []Row

	for _, r := range rows {
		key := fmt.Sprintf("%s|%s", r.CourseCode, r.Section)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, r)
		}
	}

	return unique
}
