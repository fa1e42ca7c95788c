package notes

import (
	"testing"
)

func TestNewClassification_ConfidenceInvariant(t *testing.T) {
	// Confidence is 1.0 exactly when the method is explicit or manual.
	tests := []struct {
		name   string
		method ClassificationMethod
		in     float64
		want   float64
	}{
		{"explicit forces 1.0", MethodExplicit, 0.3, 1.0},
		{"manual forces 1.0", MethodManual, 0.0, 1.0},
		{"llm capped below 1.0", MethodLLM, 1.0, 0.99},
		{"heuristic capped below 1.0", MethodHeuristic, 1.5, 0.99},
		{"heuristic floor", MethodHeuristic, -0.2, 0.0},
		{"llm passthrough", MethodLLM, 0.8, 0.8},
		{"default passthrough", MethodDefault, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassification(TypeTodo, tt.in, tt.method, "")
			if c.Confidence != tt.want {
				t.Errorf("Confidence = %v, want %v", c.Confidence, tt.want)
			}
			isFull := c.Confidence == 1.0
			isUserMethod := tt.method == MethodExplicit || tt.method == MethodManual
			if isFull != isUserMethod {
				t.Errorf("invariant violated: confidence %v with method %s", c.Confidence, tt.method)
			}
		})
	}
}

func TestClassificationMethod_IsAutomatic(t *testing.T) {
	automatic := []ClassificationMethod{
		MethodLLM, MethodHeuristic, MethodVoiceCommand, MethodContentAnalysis, MethodDefault,
	}
	for _, m := range automatic {
		if !m.IsAutomatic() {
			t.Errorf("%s.IsAutomatic() = false, want true", m)
		}
	}
	for _, m := range []ClassificationMethod{MethodExplicit, MethodManual} {
		if m.IsAutomatic() {
			t.Errorf("%s.IsAutomatic() = true, want false", m)
		}
	}
}

func TestParseNoteType(t *testing.T) {
	for _, want := range AllTypes() {
		got, err := ParseNoteType(want.String())
		if err != nil || got != want {
			t.Errorf("ParseNoteType(%q) = (%v, %v)", want, got, err)
		}
	}
	if _, err := ParseNoteType("nonsense"); err == nil {
		t.Error("ParseNoteType(nonsense) expected error")
	}
}

func TestTypeRegistry_Triggers(t *testing.T) {
	r := DefaultTypeRegistry()

	tests := []struct {
		trigger string
		want    NoteType
		wantOK  bool
	}{
		{"#todo#", TypeTodo, true},
		{"#TODO#", TypeTodo, true},
		{"  #shopping#  ", TypeShopping, true},
		{"#recipe#", TypeRecipe, true},
		{"#bogus#", TypeGeneral, false},
		{"", TypeGeneral, false},
	}
	for _, tt := range tests {
		got, ok := r.LookupTrigger(tt.trigger)
		if ok != tt.wantOK {
			t.Errorf("LookupTrigger(%q) ok = %v, want %v", tt.trigger, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupTrigger(%q) = %v, want %v", tt.trigger, got, tt.want)
		}
	}
}

func TestTypeRegistry_VoicePhrases(t *testing.T) {
	r := DefaultTypeRegistry()
	if got, ok := r.LookupVoicePhrase("New Todo"); !ok || got != TypeTodo {
		t.Errorf("LookupVoicePhrase(New Todo) = (%v, %v)", got, ok)
	}
	if _, ok := r.LookupVoicePhrase("make me a sandwich"); ok {
		t.Error("LookupVoicePhrase matched an unregistered phrase")
	}
}

func TestTypeRegistry_FindTrigger(t *testing.T) {
	r := DefaultTypeRegistry()
	trigger, typ, ok := r.FindTrigger("grab milk #shopping# later")
	if !ok || typ != TypeShopping || trigger != "#shopping#" {
		t.Errorf("FindTrigger = (%q, %v, %v)", trigger, typ, ok)
	}
	if _, _, ok := r.FindTrigger("no markers here"); ok {
		t.Error("FindTrigger matched text without a trigger")
	}
}

func TestTypeRegistry_CustomOverride(t *testing.T) {
	r := NewTypeRegistry([]TypeConfig{
		{Type: TypeTodo, Trigger: "#t#"},
		{Type: TypeRecipe, Trigger: "#t#"}, // later config wins
	})
	got, ok := r.LookupTrigger("#t#")
	if !ok || got != TypeRecipe {
		t.Errorf("LookupTrigger(#t#) = (%v, %v), want recipe", got, ok)
	}
}
