package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidClock - строка в формате HH:MM, 00:00-23:59
func ValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ParseClock возвращает минуты от начала суток
func ParseClock(s string) (int, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min, true
}

// FormatClock форматирует минуты от начала суток, с переходом через полночь
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
