// Package dates provides the shared, deterministic date/time parser used
// by extraction and formatting. Parsing is side-effect-free: relative
// keywords resolve against a caller-supplied reference time.
package dates

import (
	"strings"
	"time"
)

// layouts is the ordered list of accepted formats. ISO-8601 variants
// come first so already-ISO input never falls through to an ambiguous
// locale layout.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"01-02-2006",
}

// Parse attempts to interpret s as a date. It tries ISO-8601 first,
// then the fixed layout list, then relative keywords resolved against
// now. The second return is false when nothing matched.
func Parse(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return parseRelative(s, now)
}

// parseRelative handles natural-language keywords. Results are
// midnight-anchored on the target day except "next week"/"next month",
// which keep now's clock time.
func parseRelative(s string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(s) {
	case "today", "tonight":
		return midnight(now), true
	case "tomorrow":
		return midnight(now.AddDate(0, 0, 1)), true
	case "yesterday":
		return midnight(now.AddDate(0, 0, -1)), true
	case "next week":
		return now.AddDate(0, 0, 7), true
	case "next month":
		return now.AddDate(0, 1, 0), true
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// timeLayouts accepted by ParseClock.
var timeLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"15:04",
	"3 PM",
	"3PM",
}

// ParseClock interprets s as a time of day ("2:00 PM", "14:30").
func ParseClock(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}

// ContainsDateToken reports whether text carries a month-name or
// day-name token, used by heuristic event detection.
func ContainsDateToken(text string) bool {
	lower := strings.ToLower(text)
	tokens := []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
		"monday", "tuesday", "wednesday", "thursday", "friday",
		"saturday", "sunday",
		"today", "tomorrow", "tonight", "next week",
	}
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
