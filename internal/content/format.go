package content

import (
	"regexp"
	"strings"
	"time"
)

var extraInfoSep = regexp.MustCompile(`\r?\n|\|`)

// ParseExtraInfo splits "key=value" pairs separated by newlines or '|'.
// Parts without '=' or with an empty key are skipped; values keep any
// further '=' characters. Later keys win.
func ParseExtraInfo(text string) map[string]string {
	out := make(map[string]string)
	for _, part := range extraInfoSep.Split(text, -1) {
		part = strings.TrimSpace(part)
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	TimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDateTime renders a stored timestamp as "YYYY-MM-DD HH:MM". Values
// that do not parse are returned with 'T' replaced by a space.
func FormatDateTime(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return strings.Replace(value, "T", " ", 1)
}
