package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/noteflow/internal/llm"
	"github.com/fyrsmithlabs/noteflow/internal/notes"
	"github.com/fyrsmithlabs/noteflow/internal/textscan"
)

const eventSystemPrompt = `You extract a single calendar event from handwritten note text.

Respond ONLY with a JSON object of this exact shape:
{"title": "...", "date": "", "time": "", "location": "", "notes": ""}

Rules:
- date and time are the raw text from the note ("tomorrow", "March 5", "2:00 PM"). Do not invent or normalize them.
- Leave fields empty when the note does not state them.`

// eventJSON is the wire shape expected from the LLM.
type eventJSON struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// Event extracts a calendar event from text. LLM first, heuristics on
// any failure; never returns an error.
func (e *Engine) Event(ctx context.Context, text string) notes.Event {
	var result notes.Event
	if e.useLLM() {
		v, err := e.eventLLM(ctx, text)
		result = orElse(e, "event", v, err, func() notes.Event {
			return HeuristicEvent(text)
		})
	} else {
		result = HeuristicEvent(text)
	}
	if result.ID == "" {
		result.ID = notes.NewID()
	}
	return result
}

func (e *Engine) eventLLM(ctx context.Context, text string) (notes.Event, error) {
	raw, err := e.complete(ctx, eventSystemPrompt, text)
	if err != nil {
		return notes.Event{}, err
	}
	var wire eventJSON
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &wire); err != nil {
		return notes.Event{}, fmt.Errorf("undecodable event response: %w", err)
	}
	return notes.Event{
		Title:    strings.TrimSpace(wire.Title),
		Date:     strings.TrimSpace(wire.Date),
		Time:     strings.TrimSpace(wire.Time),
		Location: strings.TrimSpace(wire.Location),
		Notes:    strings.TrimSpace(wire.Notes),
	}, nil
}

// HeuristicEvent extracts an event by line scanning. Labeled fields
// win; otherwise the first date-like and time-like substrings are
// taken as found, raw and unparsed. First match wins per field.
func HeuristicEvent(text string) notes.Event {
	var ev notes.Event
	for _, line := range strings.Split(text, "\n") {
		if v, ok := textscan.FieldValue(line, "title"); ok && ev.Title == "" {
			ev.Title = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "date"); ok && ev.Date == "" {
			ev.Date = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "time"); ok && ev.Time == "" {
			ev.Time = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "location"); ok && ev.Location == "" {
			ev.Location = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "where"); ok && ev.Location == "" {
			ev.Location = v
			continue
		}
	}

	if ev.Date == "" {
		ev.Date = textscan.FindDate(text)
	}
	if ev.Time == "" {
		ev.Time = textscan.FindTime(text)
	}
	if ev.Title == "" {
		ev.Title = firstContentLine(text)
	}
	return ev
}

// firstContentLine returns the first non-empty, non-labeled line,
// which doubles as the event title when none is labeled.
func firstContentLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(trimmed, ":") {
			label := strings.ToLower(strings.SplitN(trimmed, ":", 2)[0])
			switch label {
			case "title", "date", "time", "location", "where", "notes":
				continue
			}
		}
		return trimmed
	}
	return ""
}
