package dial

import "strconv"

// WeekdayNames maps a weekday index (0 is Sunday) to its label abbreviation.
type WeekdayNames [7]string

// EnglishWeekdays is the built-in weekday table.
var EnglishWeekdays = WeekdayNames{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// FormatDate returns the date label text, e.g. "WED 15". The day of month
// is not zero-padded. An out-of-range weekday renders the day alone.
func FormatDate(t TimeOfDay, names WeekdayNames) string {
	day := strconv.Itoa(t.Day)
	if t.Weekday < 0 || t.Weekday >= len(names) {
		return day
	}
	return names[t.Weekday] + " " + day
}
