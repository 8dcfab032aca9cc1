// Package dial maps wall-clock time onto the geometry of a 24-hour
// scrolling dial.
//
// The dial is a horizontally tiled background strip. As the day advances
// the strip shifts left under a fixed needle, so the part of the artwork
// beneath the needle shows the current time. [Project] computes the tile
// frames for a [TimeOfDay]; [ScreenProfile] holds the per-device geometry
// and the layout of the date label revealed by package reveal.
package dial

import "time"

const (
	// MinutesPerDay is the length of one dial cycle at minute resolution.
	MinutesPerDay = 24 * 60
	// SecondsPerDay is the length of one dial cycle at second resolution.
	SecondsPerDay = MinutesPerDay * 60
)

// TimeOfDay is an immutable snapshot of the wall-clock fields the dial needs.
type TimeOfDay struct {
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-59
	Weekday int // 0-6, 0 is Sunday
	Day     int // 1-31
}

// FromTime extracts a TimeOfDay from t in t's own location.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
		Day:     t.Day(),
	}
}

// MinutesSinceMidnight returns Hour*60 + Minute, in [0, 1439].
func (t TimeOfDay) MinutesSinceMidnight() int64 {
	return int64(t.Hour)*60 + int64(t.Minute)
}

// SecondsSinceMidnight returns the elapsed seconds of the day, in [0, 86399].
func (t TimeOfDay) SecondsSinceMidnight() int64 {
	return t.MinutesSinceMidnight()*60 + int64(t.Second)
}
