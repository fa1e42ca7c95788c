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

const contactSystemPrompt = `You extract a single contact from handwritten note text.

Respond ONLY with a JSON object of this exact shape:
{"name": "", "phone": "", "email": "", "address": "", "company": "", "notes": ""}

Rules:
- Copy values exactly as written in the note.
- Leave fields empty when the note does not state them.`

// contactJSON is the wire shape expected from the LLM.
type contactJSON struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

// Contact extracts a contact record from text. LLM first, heuristics
// on any failure; never returns an error.
func (e *Engine) Contact(ctx context.Context, text string) notes.Contact {
	var result notes.Contact
	if e.useLLM() {
		v, err := e.contactLLM(ctx, text)
		result = orElse(e, "contact", v, err, func() notes.Contact {
			return HeuristicContact(text)
		})
	} else {
		result = HeuristicContact(text)
	}
	if result.ID == "" {
		result.ID = notes.NewID()
	}
	return result
}

func (e *Engine) contactLLM(ctx context.Context, text string) (notes.Contact, error) {
	raw, err := e.complete(ctx, contactSystemPrompt, text)
	if err != nil {
		return notes.Contact{}, err
	}
	var wire contactJSON
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &wire); err != nil {
		return notes.Contact{}, fmt.Errorf("undecodable contact response: %w", err)
	}
	return notes.Contact{
		Name:    strings.TrimSpace(wire.Name),
		Phone:   strings.TrimSpace(wire.Phone),
		Email:   strings.TrimSpace(wire.Email),
		Address: strings.TrimSpace(wire.Address),
		Company: strings.TrimSpace(wire.Company),
		Notes:   strings.TrimSpace(wire.Notes),
	}, nil
}

// HeuristicContact extracts a contact by line scanning. Labeled fields
// win; the first email-like and phone-like substrings fill remaining
// fields. The email is returned exactly as matched. First match wins
// per field, duplicates are not merged.
func HeuristicContact(text string) notes.Contact {
	var c notes.Contact
	for _, line := range strings.Split(text, "\n") {
		if v, ok := textscan.FieldValue(line, "name"); ok && c.Name == "" {
			c.Name = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "phone"); ok && c.Phone == "" {
			c.Phone = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "email"); ok && c.Email == "" {
			c.Email = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "address"); ok && c.Address == "" {
			c.Address = v
			continue
		}
		if v, ok := textscan.FieldValue(line, "company"); ok && c.Company == "" {
			c.Company = v
			continue
		}
	}

	if c.Email == "" {
		c.Email = textscan.EmailPattern.FindString(text)
	}
	if c.Phone == "" {
		c.Phone = strings.TrimSpace(textscan.PhonePattern.FindString(text))
	}
	if c.Name == "" {
		c.Name = contactNameLine(text)
	}
	return c
}

// contactNameLine picks the first line that is not a field line and
// not itself a phone or email.
func contactNameLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, ":") {
			continue
		}
		if textscan.EmailPattern.MatchString(trimmed) || textscan.PhonePattern.MatchString(trimmed) {
			continue
		}
		return trimmed
	}
	return ""
}
