// Package notes defines the core value types shared by the classification
// and extraction pipeline: note types, classification methods, and the
// immutable Classification record.
package notes

import (
	"fmt"
)

// NoteType identifies the semantic category of a note. The set is closed;
// new types require a registry entry and a formatter.
type NoteType string

// Known note types.
const (
	TypeTodo      NoteType = "todo"
	TypeShopping  NoteType = "shopping"
	TypeMeeting   NoteType = "meeting"
	TypeEvent     NoteType = "event"
	TypeContact   NoteType = "contact"
	TypeRecipe    NoteType = "recipe"
	TypeIdea      NoteType = "idea"
	TypeJournal   NoteType = "journal"
	TypeFinance   NoteType = "finance"
	TypeTravel    NoteType = "travel"
	TypeHealth    NoteType = "health"
	TypeReference NoteType = "reference"
	TypeGeneral   NoteType = "general"
)

// AllTypes returns every known note type in stable order.
func AllTypes() []NoteType {
	return []NoteType{
		TypeTodo, TypeShopping, TypeMeeting, TypeEvent, TypeContact,
		TypeRecipe, TypeIdea, TypeJournal, TypeFinance, TypeTravel,
		TypeHealth, TypeReference, TypeGeneral,
	}
}

// ParseNoteType converts a string label into a NoteType.
func ParseNoteType(s string) (NoteType, error) {
	for _, t := range AllTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return TypeGeneral, fmt.Errorf("unknown note type: %q", s)
}

// String implements fmt.Stringer.
func (t NoteType) String() string {
	return string(t)
}

// ClassificationMethod records how a classification was produced.
type ClassificationMethod string

// Classification methods.
const (
	MethodExplicit        ClassificationMethod = "explicit"
	MethodLLM             ClassificationMethod = "llm"
	MethodHeuristic       ClassificationMethod = "heuristic"
	MethodVoiceCommand    ClassificationMethod = "voiceCommand"
	MethodContentAnalysis ClassificationMethod = "contentAnalysis"
	MethodManual          ClassificationMethod = "manual"
	MethodDefault         ClassificationMethod = "default"
)

// IsAutomatic reports whether the method was applied without a direct
// user instruction. Only explicit triggers and manual assignment count
// as non-automatic.
func (m ClassificationMethod) IsAutomatic() bool {
	return m != MethodExplicit && m != MethodManual
}

// Classification is the result of classifying one note's text. It is an
// immutable value: later passes produce a new Classification that
// supersedes this one rather than mutating it.
//
// Invariant: Confidence is 1.0 if and only if Method is explicit or
// manual. NewClassification enforces this.
type Classification struct {
	Type          NoteType             `json:"type"`
	Confidence    float64              `json:"confidence"`
	Method        ClassificationMethod `json:"method"`
	Reasoning     string               `json:"reasoning,omitempty"`
	PromptVersion string               `json:"prompt_version,omitempty"`
}

// NewClassification builds a Classification, clamping confidence into
// [0,1] and enforcing the explicit/manual confidence invariant.
func NewClassification(t NoteType, confidence float64, method ClassificationMethod, reasoning string) Classification {
	switch method {
	case MethodExplicit, MethodManual:
		confidence = 1.0
	default:
		if confidence < 0 {
			confidence = 0
		}
		if confidence >= 1.0 {
			// Automatic methods never claim certainty.
			confidence = 0.99
		}
	}
	return Classification{
		Type:       t,
		Confidence: confidence,
		Method:     method,
		Reasoning:  reasoning,
	}
}
