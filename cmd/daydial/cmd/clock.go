package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// timeFlags are the --time and --date flags shared by frames and snapshot.
type timeFlags struct {
	clock string
	date  string
}

func (f *timeFlags) add(fs *pflag.FlagSet) {
	fs.StringVar(&f.clock, "time", "", "time of day as HH:MM or HH:MM:SS (default: now)")
	fs.StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default: today)")
}

// resolve combines the flags with now. Unset parts keep now's value.
func (f *timeFlags) resolve(now time.Time) (time.Time, error) {
	t := now
	if f.date != "" {
		d, err := time.ParseInLocation("2006-01-02", f.date, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", f.date)
		}
		t = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
	if f.clock != "" {
		layout := "15:04"
		if strings.Count(f.clock, ":") == 2 {
			layout = "15:04:05"
		}
		c, err := time.Parse(layout, f.clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --time %q: want HH:MM or HH:MM:SS", f.clock)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), c.Hour(), c.Minute(), c.Second(), 0, t.Location())
	}
	return t, nil
}

// stepClock is an animation clock that moves only when told to.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func scaleDuration(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
