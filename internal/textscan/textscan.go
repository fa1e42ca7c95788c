// Package textscan is the shared line-scanning pattern library used by
// the extraction engines, the classifier heuristics, and the
// formatters. Everything here is pure: input text in, matches out.
package textscan

import (
	"regexp"
	"strings"
)

// Field patterns shared across detectors.
var (
	// EmailPattern matches a well-formed email address substring.
	EmailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// PhonePattern matches digit-heavy phone-like strings, with
	// optional country code and common separators.
	PhonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// MentionPattern matches @Name participant tokens.
	MentionPattern = regexp.MustCompile(`@([A-Za-z][A-Za-z0-9_]*)`)

	// AmountPattern matches dollar amounts.
	AmountPattern = regexp.MustCompile(`\$\s?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	// TimePattern matches time-of-day tokens ("2:00 PM", "14:30").
	TimePattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\s?(?i:AM|PM)?\b`)

	numberedPrefix = regexp.MustCompile(`^\d+[.)]\s+`)

	// datePatterns match raw date substrings in priority order:
	// numeric forms first, then month-name forms, then relative
	// keywords. The raw substring is returned unparsed.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(,\s*\d{4})?\b`),
		regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2}(,\s*\d{4})?\b`),
		regexp.MustCompile(`(?i)\b(next week|next month|tomorrow|today|tonight|yesterday)\b`),
		regexp.MustCompile(`(?i)\b(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`),
	}
)

// FindDate returns the first raw date-like substring in text, in
// pattern priority order. Empty when nothing matches.
func FindDate(text string) string {
	for _, p := range datePatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// FindTime returns the first time-of-day substring in text.
func FindTime(text string) string {
	return strings.TrimSpace(TimePattern.FindString(text))
}

// ItemLine is one list line with its marker stripped.
type ItemLine struct {
	Text      string // marker-stripped content
	IsChecked bool
	HasBox    bool // had an explicit checkbox marker, not just a bullet
}

// checkedMarkers and uncheckedMarkers are the recognized checkbox
// prefixes. Unicode forms come from OCR of handwritten boxes.
var (
	checkedMarkers   = []string{"[x]", "[X]", "☑", "☒", "✓"}
	uncheckedMarkers = []string{"[ ]", "[]", "☐"}
	bulletMarkers    = []string{"-", "•", "*"}
)

// ParseItemLine inspects one line for a checkbox, bullet, or numbered
// prefix. ok is false when the line is not a list item.
func ParseItemLine(line string) (item ItemLine, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ItemLine{}, false
	}

	// Bullets may precede a checkbox ("- [x] milk").
	stripped := trimmed
	for _, b := range bulletMarkers {
		if strings.HasPrefix(stripped, b+" ") {
			stripped = strings.TrimSpace(strings.TrimPrefix(stripped, b))
			break
		}
	}

	for _, m := range checkedMarkers {
		if strings.HasPrefix(stripped, m) {
			return ItemLine{
				Text:      strings.TrimSpace(strings.TrimPrefix(stripped, m)),
				IsChecked: true,
				HasBox:    true,
			}, true
		}
	}
	for _, m := range uncheckedMarkers {
		if strings.HasPrefix(stripped, m) {
			return ItemLine{
				Text:   strings.TrimSpace(strings.TrimPrefix(stripped, m)),
				HasBox: true,
			}, true
		}
	}

	// Plain bullet line.
	if stripped != trimmed {
		return ItemLine{Text: stripped}, true
	}

	// Numbered list ("1. eggs", "2) flour").
	if loc := numberedPrefix.FindString(trimmed); loc != "" {
		return ItemLine{Text: strings.TrimSpace(trimmed[len(loc):])}, true
	}

	return ItemLine{}, false
}

// CountItemLines returns how many lines in text parse as list items.
func CountItemLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if _, ok := ParseItemLine(line); ok {
			n++
		}
	}
	return n
}

// unitKeywords are quantity units recognized when splitting a leading
// quantity token from item text ("2 lb flour" -> "2 lb", "flour").
var unitKeywords = map[string]bool{
	"lb": true, "lbs": true, "pound": true, "pounds": true,
	"oz": true, "ounce": true, "ounces": true,
	"gallon": true, "gallons": true, "gal": true,
	"quart": true, "quarts": true, "qt": true,
	"pint": true, "pints": true,
	"liter": true, "liters": true, "l": true,
	"kg": true, "g": true, "gram": true, "grams": true,
	"dozen": true, "pack": true, "packs": true, "bag": true, "bags": true,
	"box": true, "boxes": true, "can": true, "cans": true,
	"bottle": true, "bottles": true, "loaf": true, "loaves": true,
	"bunch": true, "head": true, "jar": true, "jars": true,
}

// SplitQuantity splits a leading quantity from item text. The quantity
// is a leading number optionally followed by one unit keyword:
// "2 apples" -> ("2", "apples"); "1 gallon milk" -> ("1 gallon", "milk").
func SplitQuantity(s string) (quantity, name string) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", s
	}
	if !isNumeric(fields[0]) {
		return "", s
	}
	if len(fields) >= 3 && unitKeywords[strings.ToLower(fields[1])] {
		return fields[0] + " " + fields[1], strings.Join(fields[2:], " ")
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '/' {
			return false
		}
	}
	return true
}

// CountQuantityLines returns how many item lines open with a quantity
// token. Used as a grocery-list signal by the classifier.
func CountQuantityLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		item, ok := ParseItemLine(line)
		if !ok {
			continue
		}
		if q, _ := SplitQuantity(item.Text); q != "" {
			n++
		}
	}
	return n
}

// categoryKeywords maps shopping categories to item-name substrings.
var categoryKeywords = map[string][]string{
	"produce": {
		"apple", "banana", "orange", "lettuce", "tomato", "onion",
		"potato", "carrot", "broccoli", "spinach", "pepper", "grape",
		"berry", "berries", "avocado", "lemon", "lime", "cucumber",
	},
	"dairy": {
		"milk", "cheese", "yogurt", "butter", "cream", "egg",
	},
	"meat": {
		"chicken", "beef", "pork", "turkey", "ham", "bacon", "sausage",
		"fish", "salmon", "shrimp", "steak",
	},
	"bakery": {
		"bread", "bagel", "roll", "muffin", "croissant", "tortilla",
		"bun", "cake", "donut",
	},
	"pantry": {
		"rice", "pasta", "flour", "sugar", "salt", "oil", "cereal",
		"beans", "sauce", "soup", "coffee", "tea", "spice", "vinegar",
	},
	"frozen": {
		"frozen", "ice cream", "pizza", "popsicle",
	},
	"household": {
		"paper towel", "toilet paper", "detergent", "soap", "shampoo",
		"sponge", "trash bag", "cleaner", "foil", "batteries",
	},
}

// categoryOrder fixes lookup order so an item matching two categories
// resolves deterministically.
var categoryOrder = []string{
	"produce", "dairy", "meat", "bakery", "pantry", "frozen", "household",
}

// CategorizeItem returns the shopping category for an item name, or
// "other" when no keyword matches.
func CategorizeItem(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range categoryOrder {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				return cat
			}
		}
	}
	return "other"
}

// FieldValue extracts the value of a "label: value" line, matching the
// label case-insensitively. ok is false when the line has a different
// label or no label.
func FieldValue(line, label string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	lower := strings.ToLower(trimmed)
	prefix := label + ":"
	if !strings.HasPrefix(lower, prefix) {
		return "", false
	}
	return strings.TrimSpace(trimmed[len(prefix):]), true
}
