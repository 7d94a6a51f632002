package utils

import (
	"strings"
	"time"
)

// All is the selection value meaning "no filter".
const All = "all"

var months = [...]string{"january", "february", "march", "april", "may", "june"}

var days = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Months returns the selectable month names in calendar order.
func Months() []string { return append([]string(nil), months[:]...) }

// Days returns the selectable weekday names, Monday first.
func Days() []string { return append([]string(nil), days[:]...) }

// MonthIndex maps a month name to its 1-based calendar number.
func MonthIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, m := range months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthName maps a 1-based calendar number back to its selectable name.
func MonthName(index int) (string, bool) {
	if index < 1 || index > len(months) {
		return "", false
	}
	return months[index-1], true
}

// MonthLabel names any calendar month, falling back to the time package
// for months outside the selectable list.
func MonthLabel(index int) string {
	if name, ok := MonthName(index); ok {
		return name
	}
	if index >= 1 && index <= 12 {
		return strings.ToLower(time.Month(index).String())
	}
	return ""
}

// MonthFromSelection resolves a menu number: 0 is All, 1..6 a month.
func MonthFromSelection(n int) (string, bool) {
	if n == 0 {
		return All, true
	}
	return MonthName(n)
}

// DayName maps a 1-based menu position (Monday=1) to the weekday name.
func DayName(index int) (string, bool) {
	if index < 1 || index > len(days) {
		return "", false
	}
	return days[index-1], true
}

// DayFromSelection resolves a menu number: 0 is All, 1..7 a weekday.
func DayFromSelection(n int) (string, bool) {
	if n == 0 {
		return All, true
	}
	return DayName(n)
}

// NormalizeDay title-cases a weekday name and reports whether it is one
// of the seven canonical names.
func NormalizeDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	title := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	for _, d := range days {
		if d == title {
			return d, true
		}
	}
	return title, false
}

// MonthCount and DayCount are the sizes of the selectable enumerations.
const (
	MonthCount = len(months)
	DayCount   = len(days)
)
