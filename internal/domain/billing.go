package domain

import "time"

// MonthsBetween counts calendar-month boundaries between from and to, compared by
// (year, month) in loc. Day of month is ignored.
func MonthsBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	from = from.In(loc)
	to = to.In(loc)
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
