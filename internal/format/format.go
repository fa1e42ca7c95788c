// Package format renders note text into styled segments and per-type
// display metadata. It consumes the same pattern library as the
// extraction engines but is display-only: nothing here is persisted
// or authoritative.
package format

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/noteflow/internal/notes"
	"github.com/fyrsmithlabs/noteflow/internal/textscan"
)

// SegmentKind labels one rendered line.
type SegmentKind string

// Segment kinds.
const (
	KindHeading    SegmentKind = "heading"
	KindItem       SegmentKind = "item"    // unchecked list item
	KindItemDone   SegmentKind = "done"    // checked list item
	KindFieldLabel SegmentKind = "field"   // "label: value" line
	KindPlain      SegmentKind = "plain"
)

// Segment is one styled line of output.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// Metadata is one display-only (label, value) pair.
type Metadata struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Result is the formatter output for one note.
type Result struct {
	Segments []Segment  `json:"segments"`
	Metadata []Metadata `json:"metadata,omitempty"`
}

// Formatter renders one note type.
type Formatter func(text string) Result

// Registry maps note types to formatters. The type set is closed, so
// dispatch is a plain map built once; unknown types get the plain
// formatter.
type Registry struct {
	formatters map[notes.NoteType]Formatter
}

// NewRegistry builds the default formatter registry.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[notes.NoteType]Formatter)}
	r.formatters[notes.TypeTodo] = FormatTodo
	r.formatters[notes.TypeShopping] = FormatShopping
	r.formatters[notes.TypeMeeting] = FormatMeeting
	r.formatters[notes.TypeFinance] = FormatFinance
	r.formatters[notes.TypeEvent] = formatFieldNote
	r.formatters[notes.TypeContact] = formatFieldNote
	return r
}

// Format renders text for the given note type.
func (r *Registry) Format(t notes.NoteType, text string) Result {
	if f, ok := r.formatters[t]; ok {
		return f(text)
	}
	return FormatPlain(text)
}

// FormatPlain renders every line as plain text, first line as heading.
func FormatPlain(text string) Result {
	var res Result
	first := true
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		kind := KindPlain
		if first {
			kind = KindHeading
			first = false
		}
		res.Segments = append(res.Segments, Segment{Kind: kind, Text: trimmed})
	}
	return res
}

// FormatTodo renders checkbox lines and reports completion progress.
func FormatTodo(text string) Result {
	var res Result
	total, done := 0, 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if item, ok := textscan.ParseItemLine(trimmed); ok {
			total++
			kind := KindItem
			if item.IsChecked {
				done++
				kind = KindItemDone
			}
			res.Segments = append(res.Segments, Segment{Kind: kind, Text: item.Text})
			continue
		}
		res.Segments = append(res.Segments, Segment{Kind: KindPlain, Text: trimmed})
	}
	if total > 0 {
		res.Metadata = append(res.Metadata, Metadata{
			Label: "progress",
			Value: fmt.Sprintf("%d/%d", done, total),
		})
	}
	return res
}

// FormatShopping renders item lines and reports the item count.
func FormatShopping(text string) Result {
	res := FormatTodo(text)
	// Progress reads as item count for shopping lists.
	for i := range res.Metadata {
		if res.Metadata[i].Label == "progress" {
			res.Metadata[i].Label = "items"
		}
	}
	return res
}

// FormatMeeting renders meeting notes and extracts the participant
// list from @Name mentions.
func FormatMeeting(text string) Result {
	res := FormatPlain(text)

	participants := Participants(text)
	if len(participants) > 0 {
		res.Metadata = append(res.Metadata, Metadata{
			Label: "participants",
			Value: strings.Join(participants, ", "),
		})
	}
	return res
}

// FormatFinance renders a receipt-style note and extracts the merchant
// name and total amount.
func FormatFinance(text string) Result {
	res := FormatPlain(text)

	if len(res.Segments) > 0 && res.Segments[0].Kind == KindHeading {
		res.Metadata = append(res.Metadata, Metadata{
			Label: "merchant",
			Value: res.Segments[0].Text,
		})
	}

	// Prefer an explicit total line; otherwise the largest amount.
	total := ""
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "total") {
			if m := textscan.AmountPattern.FindString(line); m != "" {
				total = m
				break
			}
		}
	}
	if total == "" {
		total = textscan.AmountPattern.FindString(text)
	}
	if total != "" {
		res.Metadata = append(res.Metadata, Metadata{Label: "total", Value: total})
	}
	return res
}

// Participants returns the unique @Name mentions in text, in order of
// first appearance. Exposed for callers that need the list without a
// full format pass.
func Participants(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range textscan.MentionPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// formatFieldNote renders "label: value" lines as field segments.
func formatFieldNote(text string) Result {
	var res Result
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if idx := strings.Index(trimmed, ":"); idx > 0 && idx < 20 {
			res.Segments = append(res.Segments, Segment{Kind: KindFieldLabel, Text: trimmed})
			continue
		}
		res.Segments = append(res.Segments, Segment{Kind: KindPlain, Text: trimmed})
	}
	return res
}
