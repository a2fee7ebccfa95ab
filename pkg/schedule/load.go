package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"classctl/pkg/dataset"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format selects the dataset encoding
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// rawCourse is one entry of the course-keyed dataset:
// {"PHY F417": {"course_title": "...", "sections": [...]}}
// Sections stay undecoded so one bad section does not take the course down with it.
type rawCourse[T any] struct {
	Title    string `json:"course_title" yaml:"course_title"`
	Sections []T    `json:"sections" yaml:"sections"`
}

type catalogSection struct {
	Section    string `json:"section" yaml:"section"`
	Instructor string `json:"instructor" yaml:"instructor"`
	Room       string `json:"room" yaml:"room"`
	DaysHours  string `json:"days_hours" yaml:"days_hours"`
}

// listEntry is one element of the flat list dataset. Hours are clock hours, Slots are
// hour-slot codes.
type listEntry struct {
	CourseCode  string   `json:"courseCode" yaml:"courseCode"`
	CourseTitle string   `json:"courseTitle" yaml:"courseTitle"`
	Section     string   `json:"section" yaml:"section"`
	Credits     string   `json:"credits" yaml:"credits"`
	Instructor  string   `json:"instructor" yaml:"instructor"`
	Room        string   `json:"room" yaml:"room"`
	Days        []string `json:"days" yaml:"days"`
	Hours       []int    `json:"hours" yaml:"hours"`
	Slots       []int    `json:"slots" yaml:"slots"`
	MidSem      string   `json:"midsem" yaml:"midsem"`
	Compre      string   `json:"compre" yaml:"compre"`
}

// record is the validated shape every raw entry is checked against before normalization.
// Labels and rooms are free text.
type record struct {
	CourseCode string `validate:"required"`
}

var validate = validator.New()

// Option configures loading
type Option func(*loader)

// WithLogger attaches a logger that traces dropped records and tokens at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.log = l
		}
	}
}

type loader struct {
	log      *zap.Logger
	seen     map[string]bool
	sections []Section
}

// LoadBundled parses the dataset shipped with the binary.
func LoadBundled(opts ...Option) (*Schedule, error) {
	return Parse(dataset.Schedule, FormatJSON, opts...)
}

// LoadFile reads a dataset from disk. Files ending in .yaml or .yml are decoded as YAML,
// everything else as JSON.
func LoadFile(path string, opts ...Option) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return Parse(data, FormatFromPath(path), opts...)
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a dataset in either the course-keyed catalog layout or the flat list
// layout and normalizes every section into explicit meetings.
func Parse(data []byte, format Format, opts ...Option) (*Schedule, error) {
	ld := &loader{
		log:  zap.NewNop(),
		seen: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(ld)
	}

	var err error
	switch format {
	case FormatYAML:
		err = ld.parseYAML(data)
	default:
		err = ld.parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	ld.log.Debug("dataset loaded", zap.Int("sections", len(ld.sections)))
	return newSchedule(ld.sections), nil
}

func (ld *loader) parseJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("dataset is empty")
	}

	if trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("failed to parse dataset JSON: %w", err)
		}
		for i, msg := range raw {
			var e listEntry
			if err := json.Unmarshal(msg, &e); err != nil {
				ld.dropMalformed(fmt.Sprintf("entry %d", i), err)
				continue
			}
			ld.addListEntry(e)
		}
		return nil
	}

	// Stream the object so course order follows the file, which a map would lose.
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to parse dataset JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("failed to parse dataset JSON: expected object or array")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse dataset JSON: %w", err)
		}
		code, _ := keyTok.(string)

		var msg json.RawMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("failed to parse course %q: %w", code, err)
		}

		var course rawCourse[json.RawMessage]
		if err := json.Unmarshal(msg, &course); err != nil {
			ld.dropMalformed(code, err)
			continue
		}
		var sections []catalogSection
		for i, raw := range course.Sections {
			var cs catalogSection
			if err := json.Unmarshal(raw, &cs); err != nil {
				ld.dropMalformed(fmt.Sprintf("%s section %d", code, i), err)
				continue
			}
			sections = append(sections, cs)
		}
		ld.addCatalogCourse(code, course.Title, sections)
	}
	return nil
}

func (ld *loader) parseYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse dataset YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return fmt.Errorf("dataset is empty")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		for i, node := range root.Content {
			var e listEntry
			if err := node.Decode(&e); err != nil {
				ld.dropMalformed(fmt.Sprintf("entry %d", i), err)
				continue
			}
			ld.addListEntry(e)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			code := root.Content[i].Value
			var course rawCourse[yaml.Node]
			if err := root.Content[i+1].Decode(&course); err != nil {
				ld.dropMalformed(code, err)
				continue
			}
			var sections []catalogSection
			for j := range course.Sections {
				var cs catalogSection
				if err := course.Sections[j].Decode(&cs); err != nil {
					ld.dropMalformed(fmt.Sprintf("%s section %d", code, j), err)
					continue
				}
				sections = append(sections, cs)
			}
			ld.addCatalogCourse(code, course.Title, sections)
		}
	default:
		return fmt.Errorf("failed to parse dataset YAML: expected mapping or sequence")
	}
	return nil
}

// dropMalformed skips a record whose fields have the wrong shape.
func (ld *loader) dropMalformed(where string, err error) {
	ld.log.Debug("dropping malformed record", zap.String("record", where), zap.Error(err))
}

func (ld *loader) addCatalogCourse(code, title string, sections []catalogSection) {
	for _, cs := range sections {
		dayTokens, hourTokens := SplitDaysHours(cs.DaysHours)
		days, droppedDays := resolveDays(dayTokens)
		hours, droppedHours := resolveSlots(hourTokens)
		ld.traceDropped(code, cs.Section, droppedDays, droppedHours)

		ld.add(Section{
			CourseCode:  code,
			CourseTitle: title,
			Label:       cs.Section,
			Instructor:  cs.Instructor,
			Room:        cs.Room,
			Meetings:    crossMeetings(days, hours),
			Times:       cs.DaysHours,
		})
	}
}

func (ld *loader) addListEntry(e listEntry) {
	days, droppedDays := resolveDays(e.Days)

	var hours []int
	var droppedHours []string
	for _, h := range e.Hours {
		if h >= 0 && h <= 23 {
			hours = append(hours, h)
		} else {
			droppedHours = append(droppedHours, strconv.Itoa(h))
		}
	}
	for _, slot := range e.Slots {
		if h, ok := ResolveSlot(slot); ok {
			hours = append(hours, h)
		} else {
			droppedHours = append(droppedHours, strconv.Itoa(slot))
		}
	}
	ld.traceDropped(e.CourseCode, e.Section, droppedDays, droppedHours)

	ld.add(Section{
		CourseCode:  e.CourseCode,
		CourseTitle: e.CourseTitle,
		Label:       e.Section,
		Instructor:  e.Instructor,
		Room:        e.Room,
		Meetings:    crossMeetings(days, hours),
		Times:       listTimes(e.Days, hours),
		Credits:     e.Credits,
		MidSem:      e.MidSem,
		Compre:      e.Compre,
	})
}

// add validates a normalized section and keeps the first occurrence of each key.
func (ld *loader) add(s Section) {
	rec := record{CourseCode: strings.TrimSpace(s.CourseCode)}
	if err := validate.Struct(rec); err != nil {
		ld.log.Debug("dropping invalid record",
			zap.String("course", s.CourseCode),
			zap.String("section", s.Label),
			zap.Error(err))
		return
	}

	if ld.seen[s.Key()] {
		ld.log.Debug("dropping duplicate section", zap.String("key", s.Key()))
		return
	}
	ld.seen[s.Key()] = true
	ld.sections = append(ld.sections, s)
}

func (ld *loader) traceDropped(course, section string, days, hours []string) {
	for _, d := range days {
		ld.log.Debug("unmapped day code", zap.String("course", course), zap.String("section", section), zap.String("token", d))
	}
	for _, h := range hours {
		ld.log.Debug("unmapped hour code", zap.String("course", course), zap.String("section", section), zap.String("token", h))
	}
}

// listTimes renders structured days and clock hours as display text, e.g. "T Th F 16:00".
func listTimes(days []string, hours []int) string {
	parts := append([]string{}, days...)
	for _, h := range hours {
		parts = append(parts, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"))
	}
	return strings.Join(parts, " ")
}
