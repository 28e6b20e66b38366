package models

import "time"

// DateRange is a half-open interval [Start, End) used for month and year
// filtering. The half-open end avoids off-by-one errors at period
// boundaries.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// YearRange returns [Jan 1 year, Jan 1 year+1).
func YearRange(year int) DateRange {
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// MonthRange returns [1st of month, 1st of next month). time.Date
// normalizes month 13, so a December range correctly ends on January 1 of
// the following year.
func MonthRange(year, month int) DateRange {
	return DateRange{
		Start: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC),
	}
}
