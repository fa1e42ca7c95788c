package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fyrsmithlabs/noteflow/internal/config"
	"github.com/fyrsmithlabs/noteflow/internal/llm"
	"github.com/fyrsmithlabs/noteflow/internal/notes"
)

// stubClient is a canned llm.Client for tests.
type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Complete(ctx context.Context, system, user string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Available() bool { return true }

func newTestClassifier(client llm.Client) *Classifier {
	cfg := config.Default().Classify
	return New(notes.DefaultTypeRegistry(), client, cfg, nil)
}

func TestClassify_ExplicitTriggerAlwaysWins(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})

	// Explicit wins regardless of what the text looks like.
	texts := []string{
		"",
		"Phone: 555-123-4567\nemail: jo@example.com",
		"- [ ] buy milk\n- [ ] call mom",
		"Meeting tomorrow at 2:00 PM",
		"completely unrelated prose",
	}
	for _, text := range texts {
		got := c.Classify(context.Background(), text, "#recipe#")
		if got.Method != notes.MethodExplicit {
			t.Errorf("Classify(%q, #recipe#).Method = %s, want explicit", text, got.Method)
		}
		if got.Confidence != 1.0 {
			t.Errorf("Classify(%q, #recipe#).Confidence = %v, want 1.0", text, got.Confidence)
		}
		if got.Type != notes.TypeRecipe {
			t.Errorf("Classify(%q, #recipe#).Type = %v, want recipe", text, got.Type)
		}
	}
}

func TestClassify_EmbeddedTrigger(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})
	got := c.Classify(context.Background(), "milk, eggs #shopping#", "")
	if got.Method != notes.MethodExplicit || got.Type != notes.TypeShopping {
		t.Errorf("got (%v, %s), want (shopping, explicit)", got.Type, got.Method)
	}
}

func TestClassify_HeuristicCascade(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})

	tests := []struct {
		name       string
		text       string
		wantType   notes.NoteType
		wantMethod notes.ClassificationMethod
	}{
		{
			name:       "contact before everything",
			text:       "Jane Doe\nPhone: 555-123-4567\njane@example.com",
			wantType:   notes.TypeContact,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "event on date plus time",
			text:       "Dentist appointment tomorrow at 2:00 PM",
			wantType:   notes.TypeEvent,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "todo on checkbox lines",
			text:       "[ ] call dentist\n[x] pay rent",
			wantType:   notes.TypeTodo,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "meeting on keywords",
			text:       "Agenda and action items from standup",
			wantType:   notes.TypeMeeting,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "shopping on grocery quantities",
			text:       "- 2 apples\n- 1 gallon milk\n- 3 lbs chicken",
			wantType:   notes.TypeShopping,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "recipe keywords",
			text:       "Ingredients\nPreheat oven to 350",
			wantType:   notes.TypeRecipe,
			wantMethod: notes.MethodHeuristic,
		},
		{
			name:       "general default",
			text:       "random thoughts about nothing",
			wantType:   notes.TypeGeneral,
			wantMethod: notes.MethodDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(context.Background(), tt.text, "")
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.Method != tt.wantMethod {
				t.Errorf("Method = %s, want %s", got.Method, tt.wantMethod)
			}
			if tt.wantMethod == notes.MethodHeuristic {
				if got.Confidence < 0.70 || got.Confidence > 0.85 {
					t.Errorf("Confidence = %v, outside heuristic band [0.70, 0.85]", got.Confidence)
				}
			}
		})
	}
}

func TestClassify_LLMSuccess(t *testing.T) {
	client := &stubClient{response: "```json\n{\"type\": \"recipe\", \"confidence\": 0.9, \"reasoning\": \"ingredient list\"}\n```"}
	c := newTestClassifier(client)

	got := c.Classify(context.Background(), "flour, sugar, butter", "")
	if got.Method != notes.MethodLLM {
		t.Fatalf("Method = %s, want llm", got.Method)
	}
	if got.Type != notes.TypeRecipe || got.Confidence != 0.9 {
		t.Errorf("got (%v, %v), want (recipe, 0.9)", got.Type, got.Confidence)
	}
	if got.PromptVersion == "" {
		t.Error("PromptVersion not set on llm classification")
	}
}

func TestClassify_LLMLabelOnlyResponse(t *testing.T) {
	client := &stubClient{response: "recipe"}
	c := newTestClassifier(client)

	got := c.Classify(context.Background(), "flour, sugar, butter", "")
	if got.Method != notes.MethodLLM || got.Type != notes.TypeRecipe {
		t.Errorf("got (%v, %s), want (recipe, llm)", got.Type, got.Method)
	}
}

func TestClassify_LLMFailureFallsBackToHeuristic(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	c := newTestClassifier(client)

	text := "[ ] call dentist\n[x] pay rent"
	got := c.Classify(context.Background(), text, "")

	// Same type and band as the pure-heuristic run.
	pure := newTestClassifier(llm.NoOpClient{}).Classify(context.Background(), text, "")
	if got.Type != pure.Type || got.Confidence != pure.Confidence || got.Method != pure.Method {
		t.Errorf("fallback (%v, %v, %s) differs from heuristic (%v, %v, %s)",
			got.Type, got.Confidence, got.Method, pure.Type, pure.Confidence, pure.Method)
	}

	// But the fallback is distinguishable via reasoning.
	if !strings.HasPrefix(got.Reasoning, "llm unavailable") {
		t.Errorf("Reasoning = %q, want llm-unavailable marker", got.Reasoning)
	}
	if strings.HasPrefix(pure.Reasoning, "llm unavailable") {
		t.Errorf("pure heuristic reasoning carries fallback marker: %q", pure.Reasoning)
	}
}

func TestClassify_LLMGarbageFallsBack(t *testing.T) {
	client := &stubClient{response: "I think this might be a recipe, hard to say!"}
	c := newTestClassifier(client)

	got := c.Classify(context.Background(), "[ ] one thing", "")
	if got.Method != notes.MethodHeuristic {
		t.Errorf("Method = %s, want heuristic fallback", got.Method)
	}
	if !strings.HasPrefix(got.Reasoning, "llm unavailable") {
		t.Errorf("Reasoning = %q, want fallback marker", got.Reasoning)
	}
}

func TestClassify_UnknownLLMTypeFallsBack(t *testing.T) {
	client := &stubClient{response: `{"type": "limerick", "confidence": 0.9}`}
	c := newTestClassifier(client)

	got := c.Classify(context.Background(), "[ ] one thing", "")
	if got.Type != notes.TypeTodo || got.Method != notes.MethodHeuristic {
		t.Errorf("got (%v, %s), want (todo, heuristic)", got.Type, got.Method)
	}
}

func TestClassifyVoiceCommand(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})

	got := c.ClassifyVoiceCommand("shopping list", "milk and eggs")
	if got.Method != notes.MethodVoiceCommand || got.Type != notes.TypeShopping {
		t.Errorf("got (%v, %s), want (shopping, voiceCommand)", got.Type, got.Method)
	}
	if got.Confidence >= 1.0 {
		t.Errorf("voice command confidence = %v, must stay below 1.0", got.Confidence)
	}

	// Unregistered phrase drops to the text cascade.
	got = c.ClassifyVoiceCommand("hmm what", "[ ] chores")
	if got.Type != notes.TypeTodo {
		t.Errorf("fallback type = %v, want todo", got.Type)
	}
}

func TestReclassify(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})

	got := c.Reclassify(context.Background(), "Agenda: quarterly sync")
	if got.Method != notes.MethodContentAnalysis {
		t.Errorf("Method = %s, want contentAnalysis", got.Method)
	}
	if got.Type != notes.TypeMeeting {
		t.Errorf("Type = %v, want meeting", got.Type)
	}
}

func TestManual(t *testing.T) {
	c := newTestClassifier(llm.NoOpClient{})
	got := c.Manual(notes.TypeJournal)
	if got.Method != notes.MethodManual || got.Confidence != 1.0 || got.Type != notes.TypeJournal {
		t.Errorf("Manual = %+v", got)
	}
}
