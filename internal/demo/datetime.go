package demo

import (
	"context"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// clock renders the time of day as HH:MM, adding :SS only when seconds or
// a fraction are non-zero. The fraction is printed in the shortest group of
// 3, 6 or 9 digits that holds it exactly: .250, .000250, .000000001.
func clock(t time.Time) string {
	s := t.Format("15:04")
	sec, nano := t.Second(), t.Nanosecond()
	if sec == 0 && nano == 0 {
		return s
	}
	s += fmt.Sprintf(":%02d", sec)
	switch {
	case nano == 0:
	case nano%1_000_000 == 0:
		s += fmt.Sprintf(".%03d", nano/1_000_000)
	case nano%1_000 == 0:
		s += fmt.Sprintf(".%06d", nano/1_000)
	default:
		s += fmt.Sprintf(".%09d", nano)
	}
	return s
}

// zoned renders t in loc with the offset and zone name appended:
// 2026-10-19T08:30:15.250Z[UTC].
func zoned(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return fmt.Sprintf("%sT%s%s[%s]", t.Format(dateLayout), clock(t), t.Format("Z07:00"), loc)
}

func demoDateTime(_ context.Context, env *Env) {
	now := env.Now()

	loc, err := time.LoadLocation(env.Cfg.Zone)
	if err != nil {
		fmt.Fprintln(env.Out, "  zone:", err)
		loc = time.UTC
	}

	fmt.Fprintln(env.Out, "Current Date:", now.Format(dateLayout))
	fmt.Fprintln(env.Out, "Current Time:", clock(now))
	fmt.Fprintf(env.Out, "Current %s Time: %s\n", loc, zoned(now, loc))
}
