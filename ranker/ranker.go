package ranker

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"local-booster/models"
)

// Sentinels shown when the data cannot answer the question.
const CLOSED_TEXT = "closed"
const HOURS_UNAVAILABLE_TEXT = "hours unavailable"

// weekdayNames is Sunday-first, matching the period day convention.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// distancePattern recognizes display distances like "350 m", "1.2 km" or
// "1,2 km".
var distancePattern = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*(km|m)\b`)

// DistanceMeters returns the place's distance in meters. The raw value
// wins when present; otherwise the display string is parsed. Places with
// neither rank as +Inf so they sort last.
func DistanceMeters(p models.Place) float64 {
	if p.DistanceRaw != nil {
		return *p.DistanceRaw
	}
	m := distancePattern.FindStringSubmatch(p.Distance)
	if m == nil {
		return math.Inf(1)
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return math.Inf(1)
	}
	if strings.EqualFold(m[2], "km") {
		return value * 1000
	}
	return value
}

// SortByDistance returns a new slice sorted ascending by DistanceMeters.
// The sort is stable, so places without a usable distance keep their
// original relative order at the end. The input is never mutated.
func SortByDistance(places []models.Place) []models.Place {
	sorted := make([]models.Place, len(places))
	copy(sorted, places)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DistanceMeters(sorted[i]) < DistanceMeters(sorted[j])
	})
	return sorted
}

// IsOpenNow reports whether the source marked the place open. Absent or
// malformed hours mean false.
func IsOpenNow(h *models.OpeningHours) bool {
	return h != nil && h.OpenNow
}

// TimeUntilOpen scans day offsets 0..6 starting at now's weekday for the
// next opening. Today's openings count only when strictly after now and
// yield a countdown ("8h 0min", "45min"); later days yield an absolute
// time ("opens tomorrow at 09:00", "opens Friday at 10:00"). With no
// opening within a week the closed sentinel is returned.
func TimeUntilOpen(h *models.OpeningHours, now time.Time) string {
	if h == nil || len(h.Periods) == 0 {
		return CLOSED_TEXT
	}

	today := int(now.Weekday())
	nowMinutes := now.Hour()*60 + now.Minute()

	for offset := 0; offset < 7; offset++ {
		day := (today + offset) % 7
		best := -1
		for _, p := range h.Periods {
			if p.Open.Day != day {
				continue
			}
			open, ok := parseClock(p.Open.Time)
			if !ok {
				continue
			}
			if offset == 0 && open <= nowMinutes {
				continue
			}
			if best == -1 || open < best {
				best = open
			}
		}
		if best == -1 {
			continue
		}
		if offset == 0 {
			return formatCountdown(best - nowMinutes)
		}
		clock := fmt.Sprintf("%02d:%02d", best/60, best%60)
		if offset == 1 {
			return "opens tomorrow at " + clock
		}
		return "opens " + weekdayNames[day] + " at " + clock
	}
	return CLOSED_TEXT
}

// TodaysHoursText returns today's line of the Monday-first weekday_text
// block. now's Sunday-first weekday is shifted with (day+6)%7.
func TodaysHoursText(h *models.OpeningHours, now time.Time) string {
	if h == nil || len(h.WeekdayText) != 7 {
		return HOURS_UNAVAILABLE_TEXT
	}
	return h.WeekdayText[(int(now.Weekday())+6)%7]
}

// parseClock converts "HHMM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh > 23 {
		return 0, false
	}
	mm, err := strconv.Atoi(s[2:])
	if err != nil || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

func formatCountdown(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dmin", minutes)
}
