package coursetab

import (
	"regexp"
	"strconv"
	"strings"
)

// Slot is one parsed meeting time such as "五 / 6,7 / B 206".
type Slot struct {
	Day   int    `json:"day"` // 1 (Monday) .. 7 (Sunday)
	Start int    `json:"startTime"`
	End   int    `json:"endTime"`
	Place string `json:"place"`
}

var dayTokens = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5, "六": 6, "日": 7, "天": 7,
	"Mon": 1, "Tue": 2, "Wed": 3, "Thu": 4, "Fri": 5, "Sat": 6, "Sun": 7,
}

var (
	periodPairRe   = regexp.MustCompile(`^(\d+)[,\-~–—](\d+)$`)
	periodSingleRe = regexp.MustCompile(`^(\d+)$`)
)

// ParseSlot parses a "day / periods / place" time cell. The place part is
// optional. It reports false when the day or period part is unrecognized.
func ParseSlot(s string) (Slot, bool) {
	var parts []string
	for _, p := range strings.Split(s, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return Slot{}, false
	}

	day, ok := parseDay(parts[0])
	if !ok {
		return Slot{}, false
	}
	start, end, ok := parsePeriods(parts[1])
	if !ok {
		return Slot{}, false
	}

	var place string
	if len(parts) > 2 {
		place = strings.Join(strings.Fields(parts[2]), "")
	}
	return Slot{Day: day, Start: start, End: end, Place: place}, true
}

// Slots parses every time entry of the course, skipping unrecognized ones.
func (c *Course) Slots() []Slot {
	slots := make([]Slot, 0, len(c.Times))
	for _, t := range c.Times {
		if slot, ok := ParseSlot(t); ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

func parseDay(tok string) (int, bool) {
	if d, ok := dayTokens[tok]; ok {
		return d, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > 7 {
		return 0, false
	}
	return n, true
}

func parsePeriods(tok string) (int, int, bool) {
	tok = strings.Join(strings.Fields(tok), "")
	if m := periodPairRe.FindStringSubmatch(tok); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return min(a, b), max(a, b), true
	}
	if m := periodSingleRe.FindStringSubmatch(tok); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v, v, true
	}
	return 0, 0, false
}
