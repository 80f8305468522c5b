package scalar

import (
	"strconv"
	"strings"
	"time"

	"github.com/andaru/apixml/xmlerr"
)

// dateLayouts are tried in order by ParseDate. The last two accept
// timestamps without a zone, which are taken as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseBoolean parses true/false (any case) and 1/0.
func ParseBoolean(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, xmlerr.Format(s, xmlerr.WithMessage("invalid boolean"))
}

// ParseInteger parses a base 10 signed 64-bit integer.
func ParseInteger(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, xmlerr.Format(s, xmlerr.WithMessage("invalid integer"), xmlerr.WithCause(err))
	}
	return v, nil
}

// ParseDecimal parses a decimal number.
func ParseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, xmlerr.Format(s, xmlerr.WithMessage("invalid decimal"), xmlerr.WithCause(err))
	}
	return v, nil
}

// ParseDate parses an ISO-8601 timestamp such as 2016-10-20T10:12:13.000+02:00.
func ParseDate(s string) (time.Time, error) {
	text := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, xmlerr.Format(s, xmlerr.WithMessage("invalid date"))
}

func FormatBoolean(v bool) string    { return strconv.FormatBool(v) }
func FormatInteger(v int64) string   { return strconv.FormatInt(v, 10) }
func FormatDecimal(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
func FormatDate(v time.Time) string  { return v.Format(time.RFC3339Nano) }
