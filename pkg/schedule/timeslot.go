package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// slotHours maps the institution's class periods to 24-hour clock hours
var slotHours = map[int]int{
	1:  8,
	2:  9,
	3:  10,
	4:  11,
	5:  12,
	6:  13,
	7:  14,
	8:  15,
	9:  16,
	10: 17,
}

// dayCodes maps timetable day abbreviations to weekdays
var dayCodes = map[string]time.Weekday{
	"Su": time.Sunday,
	"M":  time.Monday,
	"T":  time.Tuesday,
	"W":  time.Wednesday,
	"Th": time.Thursday,
	"F":  time.Friday,
	"S":  time.Saturday,
}

// Slots returns the defined slot codes in ascending order.
func Slots() []int {
	slots := make([]int, 0, len(slotHours))
	for slot := 1; slot <= len(slotHours); slot++ {
		slots = append(slots, slot)
	}
	return slots
}

// ResolveDay maps a day abbreviation to its weekday. Unknown codes report false.
func ResolveDay(code string) (time.Weekday, bool) {
	day, ok := dayCodes[code]
	return day, ok
}

// ResolveSlot maps an hour-slot code to a clock hour. Codes outside 1..10 report false.
func ResolveSlot(slot int) (int, bool) {
	hour, ok := slotHours[slot]
	return hour, ok
}

// SlotForHour is the inverse of ResolveSlot.
func SlotForHour(hour int) (int, bool) {
	for slot, h := range slotHours {
		if h == hour {
			return slot, true
		}
	}
	return 0, false
}

// DayCode returns the timetable abbreviation for a weekday.
func DayCode(day time.Weekday) string {
	for code, d := range dayCodes {
		if d == day {
			return code
		}
	}
	return ""
}

// ParseWeekday accepts a day code ("Th"), an English day name ("thursday", "Thu") or a
// number 0 (Sunday) through 6 (Saturday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	if day, ok := ResolveDay(s); ok {
		return day, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n <= 6 {
			return time.Weekday(n), nil
		}
		return 0, fmt.Errorf("day number %d out of range 0-6", n)
	}

	lower := strings.ToLower(s)
	if len(lower) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), lower) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

// SplitDaysHours splits a combined "days hours" field such as "T Th F 9" into its day
// tokens and hour tokens. The hour segment starts at the first non-digit, space, digit
// boundary and ends at the next one.
func SplitDaysHours(field string) (days []string, hours []string) {
	var segments []string
	start := 0
	for i := 1; i+1 < len(field); i++ {
		if field[i] == ' ' && !isDigit(field[i-1]) && isDigit(field[i+1]) {
			segments = append(segments, field[start:i])
			start = i + 1
		}
	}
	segments = append(segments, field[start:])

	days = tokens(segments[0])
	if len(segments) > 1 {
		hours = tokens(segments[1])
	}
	return days, hours
}

// ParseDaysHours resolves a combined "days hours" field. Tokens outside the day or slot
// alphabets are dropped.
func ParseDaysHours(field string) ([]time.Weekday, []int) {
	dayTokens, hourTokens := SplitDaysHours(field)
	days, _ := resolveDays(dayTokens)
	hours, _ := resolveSlots(hourTokens)
	return days, hours
}

func resolveDays(codes []string) (days []time.Weekday, dropped []string) {
	for _, code := range codes {
		if day, ok := ResolveDay(code); ok {
			days = append(days, day)
		} else {
			dropped = append(dropped, code)
		}
	}
	return days, dropped
}

func resolveSlots(codes []string) (hours []int, dropped []string) {
	for _, code := range codes {
		slot, err := strconv.Atoi(code)
		if err != nil {
			dropped = append(dropped, code)
			continue
		}
		if hour, ok := ResolveSlot(slot); ok {
			hours = append(hours, hour)
		} else {
			dropped = append(dropped, code)
		}
	}
	return hours, dropped
}

func tokens(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
