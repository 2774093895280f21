package dateutils

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Publication dates on pages come in a few shapes:
//
//	Today at 19:10
//	Yesterday at 18:23
//	06 Feb 2024 at 18:29
//	2024-02-06T18:29:00Z (machine-readable meta values)

var MONTH_ABBR = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

const (
	RELATIVE_FORMAT_FIELDS = 3
	ABSOLUTE_FORMAT_FIELDS = 5
)

var (
	ErrUnsupportedDateFormat = errors.New("unsupported date format")
	ErrInvalidDayFormat      = errors.New("invalid day format")
	ErrInvalidHourFormat     = errors.New("invalid hour format")
	ErrInvalidMinuteFormat   = errors.New("invalid minute format")
	ErrInvalidYearFormat     = errors.New("invalid year format")
	ErrUnknownMonthAbbr      = errors.New("unknown month abbreviation")
)

func parseDay(day string) (int, error) {
	dayInt, err := strconv.Atoi(day)
	if err != nil {
		return 0, ErrInvalidDayFormat
	}
	return dayInt, nil
}

func parseHour(timeString string) (int, error) {
	dateFormat := strings.Split(timeString, ":")
	hour, err := strconv.Atoi(dateFormat[0])
	if err != nil {
		return 0, ErrInvalidHourFormat
	}
	return hour, nil
}

func parseMinute(timeString string) (int, error) {
	dateFormat := strings.Split(timeString, ":")
	if len(dateFormat) < 2 {
		return 0, ErrInvalidMinuteFormat
	}
	minute, err := strconv.Atoi(dateFormat[1])
	if err != nil {
		return 0, ErrInvalidMinuteFormat
	}
	return minute, nil
}

func parseRelativeDate(day, timeString string) (time.Time, error) {
	now := time.Now()

	hour, err := parseHour(timeString)
	if err != nil {
		return time.Time{}, err
	}
	minute, err := parseMinute(timeString)
	if err != nil {
		return time.Time{}, err
	}

	switch day {
	case "Today":
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
	case "Yesterday":
		yesterday := now.AddDate(0, 0, -1)
		return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), hour, minute, 0, 0, now.Location()), nil
	}

	return time.Time{}, ErrUnsupportedDateFormat
}

func parseAbsoluteDate(day, monthAbbrev, year, timeString string) (time.Time, error) {
	month, ok := MONTH_ABBR[monthAbbrev]
	if !ok {
		return time.Time{}, ErrUnknownMonthAbbr
	}

	yearInt, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, ErrInvalidYearFormat
	}

	dayInt, err := parseDay(day)
	if err != nil {
		return time.Time{}, err
	}

	hourInt, err := parseHour(timeString)
	if err != nil {
		return time.Time{}, err
	}

	minuteInt, err := parseMinute(timeString)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(yearInt, month, dayInt, hourInt, minuteInt, 0, 0, time.Now().Location()), nil
}

// ParsePublishedDate turns a page's publication date into a time.Time.
// Machine-readable RFC 3339 values are accepted too, since
// `article:published_time` meta tags carry them.
func ParsePublishedDate(str string) (time.Time, error) {
	str = strings.TrimSpace(str)

	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t, nil
	}

	dateFormat := strings.Fields(str)

	switch len(dateFormat) {
	case RELATIVE_FORMAT_FIELDS:
		return parseRelativeDate(dateFormat[0], dateFormat[2])
	case ABSOLUTE_FORMAT_FIELDS:
		return parseAbsoluteDate(dateFormat[0], dateFormat[1], dateFormat[2], dateFormat[4])
	}

	return time.Time{}, ErrUnsupportedDateFormat
}

// ParseQueryString accepts the date formats allowed in API query params:
// `2024-10-12T10:01` or `2024-10-12`.
func ParseQueryString(str string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04", str); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", str); err == nil {
		return t, nil
	}
	return time.Time{}, ErrUnsupportedDateFormat
}

// ToString and ParseString are the timestamp wire format of NATS payloads.
func ToString(t time.Time) string {
	return t.Format(time.Layout)
}

func ParseString(str string) (time.Time, error) {
	return time.Parse(time.Layout, str)
}

// Prettify renders a stored timestamp for API responses.
func Prettify(t time.Time) string {
	return t.Format("15:04 02-01-2006")
}
