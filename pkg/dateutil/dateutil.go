package dateutil

import (
	"time"
)

// PeriodEndDate returns the calendar date at which a 1-based projection period ends.
// Period lengths that divide a year into whole months step by months; anything else
// (weekly, daily) steps by days.
func PeriodEndDate(start time.Time, period, periodsPerYear int) time.Time {
	if periodsPerYear <= 0 {
		return start
	}
	if 12%periodsPerYear == 0 {
		return AddMonths(start, period*(12/periodsPerYear))
	}
	return start.AddDate(0, 0, period*365/periodsPerYear)
}

// YearOfPeriod returns the 1-based projection year containing the period
func YearOfPeriod(period, periodsPerYear int) int {
	if periodsPerYear <= 0 || period <= 0 {
		return 0
	}
	return (period-1)/periodsPerYear + 1
}

// IsYearEnd reports whether the period closes a projection year
func IsYearEnd(period, periodsPerYear int) bool {
	return periodsPerYear > 0 && period > 0 && period%periodsPerYear == 0
}

// PeriodsInYears converts a number of years into projection periods
func PeriodsInYears(years, periodsPerYear int) int {
	return years * periodsPerYear
}

// AddMonths adds a specified number of months to a date, clamping to the end of
// the target month (Jan 31 + 1 month is Feb 28/29, not Mar 3)
func AddMonths(date time.Time, months int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	target := first.AddDate(0, months, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := date.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}
