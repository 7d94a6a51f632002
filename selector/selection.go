// Package selector acquires a validated (city, month, day) filter triple
// from an interactive text stream.
package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/bikeshare-stats/registry"
	"github.com/theoremus-urban-solutions/bikeshare-stats/utils"
)

// All disables the month or day filter
const All = utils.All

// Selection is a validated filter triple. Values always come from the
// registry and the calendar enumerations.
type Selection struct {
	City  string
	Month string
	Day   string
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// ValidationError reports a menu selection outside its valid range
type ValidationError struct {
	Param string
	Input string
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	valid := make([]string, 0, e.Max-e.Min+1)
	for i := e.Min; i <= e.Max; i++ {
		valid = append(valid, strconv.Itoa(i))
	}
	return fmt.Sprintf("invalid %s %q: use one of %s", e.Param, e.Input, strings.Join(valid, ", "))
}

func parseNumber(param, input string, min, max int) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, &ValidationError{Param: param, Input: s, Min: min, Max: max}
	}
	return n, nil
}

// ParseCity resolves a 1-based city menu number against the registry.
func ParseCity(r *registry.Registry, input string) (string, error) {
	n, err := parseNumber("city", input, 1, r.Len())
	if err != nil {
		return "", err
	}
	city, _ := r.At(n)
	return city, nil
}

// ParseMonth resolves a month menu number: 0 is All.
func ParseMonth(input string) (string, error) {
	n, err := parseNumber("month", input, 0, utils.MonthCount)
	if err != nil {
		return "", err
	}
	month, _ := utils.MonthFromSelection(n)
	return month, nil
}

// ParseDay resolves a day menu number: 0 is All.
func ParseDay(input string) (string, error) {
	n, err := parseNumber("day", input, 0, utils.DayCount)
	if err != nil {
		return "", err
	}
	day, _ := utils.DayFromSelection(n)
	return day, nil
}
